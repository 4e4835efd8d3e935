package animal

// 解析维基百科“动物名称列表”页面：定位动物表格、抽取每一行的动物名称与关联形容词、查找动物详情页中的图片

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	ErrTableNotFound  = errors.New("animal table not found")
	ErrHeaderNotFound = errors.New("could not find animal and collateral adjective column names")
	ErrSectionRow     = errors.New("section divider row")
	ErrMalformedRow   = errors.New("malformed row")
	ErrNoLink         = errors.New("animal cell has no link")
	ErrImageNotFound  = errors.New("could not find image")
)

// 同一棵html节点树，goquery用于css选择器，htmlquery用于xpath
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

func ParseDocument(body []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html failed:%w", err)
	}
	return &Document{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

/*
输入一个css选择器，输出动物表格和一个错误

选择器按固定的结构位置定位表格（例如table:nth-child(16)），页面结构变化后可能选中错误的表格或什么也选不中，
这是抓取不受控页面的固有限制。找不到表格或表格没有tbody时返回ErrTableNotFound，
表头中缺少Animal或Collateral adjective列时返回ErrHeaderNotFound
*/
func (d *Document) Table(selector string) (*Table, error) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: selector %q", ErrTableNotFound, selector)
	}
	tbody := sel.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, fmt.Errorf("%w: missing tbody", ErrTableNotFound)
	}

	var rows []*goquery.Selection
	tbody.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, tr)
	})
	if len(rows) == 0 {
		return nil, ErrHeaderNotFound
	}

	header, err := ParseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	return &Table{Header: header, rows: rows[1:]}, nil
}
