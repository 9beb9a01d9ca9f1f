package catalog

import (
	"grid-studio/internal/grid/geometry"
)

// ============================================================
// Pattern Catalog
// ============================================================

// Rule строит геометрию паттерна внутри рабочей области.
type Rule func(f geometry.Frame, p *geometry.Plan)

type Descriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Category struct {
	Name     string       `json:"name"`
	Patterns []Descriptor `json:"patterns"`
}

type entry struct {
	id   string
	name string
	rule Rule
}

type section struct {
	name    string
	entries []entry
}

// Порядок категорий совпадает с порядком в интерфейсе выбора.
var sections = []section{
	{"Compositional", compositional},
	{"Modular", modular},
	{"Interface", interfaces},
	{"Technical", technical},
	{"Editorial", editorial},
	{"Rhythm", rhythm},
	{"Compound", compound},
	{"Standard", standard},
	{"Baseline", baseline},
	{"Columns", columns},
	{"Rows", rows},
	{"Axial", axial},
	{"Diagonal", diagonal},
	{"Radial", radial},
	{"Sacred Geometry", sacred},
}

var index = buildIndex()

type indexed struct {
	desc Descriptor
	rule Rule
}

func buildIndex() map[string]indexed {
	m := make(map[string]indexed)
	for _, s := range sections {
		for _, e := range s.entries {
			m[e.id] = indexed{
				desc: Descriptor{ID: e.id, Name: e.name, Category: s.name},
				rule: e.rule,
			}
		}
	}
	return m
}

// Categories возвращает упорядоченный каталог.
func Categories() []Category {
	out := make([]Category, 0, len(sections))
	for _, s := range sections {
		c := Category{Name: s.name, Patterns: make([]Descriptor, 0, len(s.entries))}
		for _, e := range s.entries {
			c.Patterns = append(c.Patterns, Descriptor{ID: e.id, Name: e.name, Category: s.name})
		}
		out = append(out, c)
	}
	return out
}

// All возвращает все паттерны одним списком в порядке каталога.
func All() []Descriptor {
	var out []Descriptor
	for _, c := range Categories() {
		out = append(out, c.Patterns...)
	}
	return out
}

func Lookup(id string) (Descriptor, bool) {
	it, ok := index[id]
	return it.desc, ok
}

// Build добавляет в план геометрию паттерна. Неизвестный id ничего не
// рисует и возвращает false.
func Build(id string, f geometry.Frame, p *geometry.Plan) bool {
	it, ok := index[id]
	if !ok {
		return false
	}
	it.rule(f, p)
	return true
}
