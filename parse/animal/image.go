package animal

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
)

// 在动物详情页中查找图片：先用信息框的css选择器，找不到再用xpath备选路径
type ImageFinder struct {
	primary  string
	fallback *xpath.Expr
	base     *url.URL
}

func NewImageFinder(primary, fallback string, base *url.URL) (*ImageFinder, error) {
	expr, err := xpath.Compile(fallback)
	if err != nil {
		return nil, fmt.Errorf("compile fallback image xpath %q failed:%w", fallback, err)
	}
	return &ImageFinder{
		primary:  primary,
		fallback: expr,
		base:     base,
	}, nil
}

/*
输入动物详情页文档，输出图片的绝对地址和一个错误

主选择器没有命中或src为空时执行备选xpath，两者都找不到返回ErrImageNotFound
*/
func (f *ImageFinder) Find(d *Document) (string, error) {
	src := d.doc.Find(f.primary).First().AttrOr("src", "")
	if src == "" {
		if n := htmlquery.QuerySelector(d.root, f.fallback); n != nil {
			src = htmlquery.SelectAttr(n, "src")
		}
	}
	if src == "" {
		return "", ErrImageNotFound
	}
	return f.resolve(src)
}

// 维基百科的图片地址是协议相对的（//upload.wikimedia.org/...），补上http:
func (f *ImageFinder) resolve(src string) (string, error) {
	if strings.HasPrefix(src, "//") {
		return "http:" + src, nil
	}
	ref, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("bad image src %q:%w", src, err)
	}
	return f.base.ResolveReference(ref).String(), nil
}
