package animal

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	animalColumn    = "Animal"
	adjectiveColumn = "Collateral adjective"

	// 少于3个单元格的行是字母分隔行（A、B、C...）
	minCells = 3
)

// 表头中两列的下标
type Header struct {
	AnimalCol    int
	AdjectiveCol int
}

type Table struct {
	Header Header
	rows   []*goquery.Selection // 不含表头
}

// 一行数据抽取的结果，不做持久化
type Row struct {
	Name       string
	Adjectives []string
	Link       string // 动物详情页的绝对地址
}

func (t *Table) Rows() []*goquery.Selection {
	return t.rows
}

func cells(tr *goquery.Selection) *goquery.Selection {
	return tr.ChildrenFiltered("th, td")
}

/*
输入表头行，输出两列的下标和一个错误

单元格文本去掉首尾空白后与Animal、Collateral adjective完全相等才算匹配，任一列缺失返回ErrHeaderNotFound
*/
func ParseHeader(tr *goquery.Selection) (Header, error) {
	h := Header{AnimalCol: -1, AdjectiveCol: -1}
	cells(tr).Each(func(j int, col *goquery.Selection) {
		switch strings.TrimSpace(col.Text()) {
		case animalColumn:
			h.AnimalCol = j
		case adjectiveColumn:
			h.AdjectiveCol = j
		}
	})
	if h.AnimalCol < 0 || h.AdjectiveCol < 0 {
		return h, ErrHeaderNotFound
	}
	return h, nil
}

/*
输入一行数据、表头和站点根地址，输出抽取结果和一个错误

分隔行返回ErrSectionRow；动物列没有链接返回ErrNoLink。动物名称取动物列第一个链接的文本，
图片详情页取同一链接的href并基于站点根地址解析为绝对地址
*/
func ExtractRow(tr *goquery.Selection, h Header, base *url.URL) (Row, error) {
	tds := cells(tr)
	if tds.Length() < minCells {
		return Row{}, ErrSectionRow
	}
	if h.AnimalCol >= tds.Length() || h.AdjectiveCol >= tds.Length() {
		return Row{}, fmt.Errorf("%w: %d cells", ErrMalformedRow, tds.Length())
	}

	link := tds.Eq(h.AnimalCol).Find("a").First()
	if link.Length() == 0 {
		return Row{}, ErrNoLink
	}

	href, err := ImageLink(base, link.AttrOr("href", ""))
	if err != nil {
		return Row{}, err
	}

	return Row{
		Name:       ExtractAnimalName(link.Text()),
		Adjectives: ExtractAdjectives(tds.Eq(h.AdjectiveCol).Text()),
		Link:       href,
	}, nil
}

// 截掉第一个“/”之后的内容，例如Horse/Pony得到Horse
func ExtractAnimalName(text string) string {
	name, _, _ := strings.Cut(text, "/")
	return strings.TrimSpace(name)
}

/*
输入关联形容词单元格的文本，输出一个或多个形容词

空文本记为none，单独的“?”记为unknown；截掉第一个“/”之后的备选写法和第一个“[”之后的脚注，
剩余部分按空白切分。切分后什么都不剩时同样记为none
*/
func ExtractAdjectives(text string) []string {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return []string{"none"}
	case "?":
		return []string{"unknown"}
	}

	text, _, _ = strings.Cut(text, "/")
	text, _, _ = strings.Cut(text, "[")

	adjectives := strings.Fields(text)
	if len(adjectives) == 0 {
		return []string{"none"}
	}
	return adjectives
}

func ImageLink(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("%w: bad href %q: %v", ErrMalformedRow, href, err)
	}
	return base.ResolveReference(ref).String(), nil
}
