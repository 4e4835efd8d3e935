package htmlstorage

// 将关联形容词映射导出为静态HTML表格

import (
	"fmt"
	"os"
	"strings"

	"github.com/dszqbsm/animalcrawler/parse/animal"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

var header = table.Row{"Collateral Adjective", "Animals", "Picture Path"}

type HTMLStore struct {
	options
}

func New(opts ...Option) *HTMLStore {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &HTMLStore{options: options}
}

/*
输入关联形容词映射，输出HTML表格字符串

每个形容词一行，按插入顺序排列；同一形容词下的动物名称和图片路径各占一行（渲染为<br/>），文本经过HTML转义
*/
func Render(m *animal.Mapping) string {
	t := table.NewWriter()
	t.AppendHeader(header)
	m.Each(func(adjective string, e *animal.Entry) {
		t.AppendRow(table.Row{
			adjective,
			strings.Join(e.Animals, "\n"),
			strings.Join(e.Pictures, "\n"),
		})
	})
	return t.RenderHTML()
}

// 覆盖写入上一次运行的输出文件
func (s *HTMLStore) Save(m *animal.Mapping) error {
	s.logger.Info("attempting to export to html", zap.String("path", s.filePath))
	if err := os.WriteFile(s.filePath, []byte(Render(m)), 0o644); err != nil {
		return fmt.Errorf("export html failed:%w", err)
	}
	s.logger.Info("successfully exported to html", zap.Int("rows", m.Len()))
	return nil
}
