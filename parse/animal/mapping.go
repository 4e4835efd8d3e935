package animal

import "path"

// 某个关联形容词下的动物名称和对应的本地图片路径，两者按行一一对应
type Entry struct {
	Animals  []string
	Pictures []string
}

// 关联形容词到动物的映射，按形容词首次出现的顺序展示
type Mapping struct {
	keys    []string
	entries map[string]*Entry
}

func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]*Entry)}
}

// 将动物名称追加到每个形容词下，形容词不存在时新建
func (m *Mapping) Add(adjectives []string, animal string) {
	for _, adj := range adjectives {
		e, ok := m.entries[adj]
		if !ok {
			e = &Entry{}
			m.entries[adj] = e
			m.keys = append(m.keys, adj)
		}
		e.Animals = append(e.Animals, animal)
	}
}

// 将图片路径追加到每个形容词下，必须在Add之后调用，未出现过的形容词会被忽略
func (m *Mapping) AddPicture(adjectives []string, picture string) {
	for _, adj := range adjectives {
		if e, ok := m.entries[adj]; ok {
			e.Pictures = append(e.Pictures, picture)
		}
	}
}

func (m *Mapping) Get(adjective string) (*Entry, bool) {
	e, ok := m.entries[adjective]
	return e, ok
}

func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

func (m *Mapping) Each(fn func(adjective string, e *Entry)) {
	for _, k := range m.keys {
		fn(k, m.entries[k])
	}
}

// 本地图片路径，例如tmp/Horse.png
func PicturePath(dir, name, ext string) string {
	return path.Join(dir, name+ext)
}
