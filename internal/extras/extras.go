package extras

import (
	"strconv"
	"strings"

	"github.com/velen-dev/velen/internal/entity"
)

// indent prefixes every attribute line.
const indent = "\n    "

// field is one entry of a per-kind serialization table. Exactly one of
// scalar or list is set.
type field[R any] struct {
	key    string
	scalar func(R) (string, bool)
	list   func(R) []string
}

var categoryFields = []field[*entity.Category]{
	{key: "desc", scalar: func(c *entity.Category) (string, bool) { return optString(c.Desc) }},
	{key: "middleware", list: func(c *entity.Category) []string { return c.Middlewares }},
	{key: "afterware", list: func(c *entity.Category) []string { return c.Afterwares }},
}

// commandFields excludes the handler, which appendHandler writes last.
var commandFields = []field[*entity.Command]{
	{key: "category", scalar: func(c *entity.Command) (string, bool) { return optString(c.Category) }},
	{key: "desc", scalar: func(c *entity.Command) (string, bool) { return optString(c.Desc) }},
	{key: "cooldown", scalar: func(c *entity.Command) (string, bool) { return optInt(c.Cooldown) }},
	{key: "middleware", list: func(c *entity.Command) []string { return c.Middlewares }},
	{key: "afterware", list: func(c *entity.Command) []string { return c.Afterwares }},
	{key: "usage", list: func(c *entity.Command) []string { return c.Usages }},
	{key: "shortcut", list: func(c *entity.Command) []string { return c.Shortcuts }},
}

// Serialize returns the extras block for r. Unknown record types yield an
// empty block.
func Serialize(r entity.Record) string {
	var b strings.Builder
	switch rec := r.(type) {
	case *entity.Category:
		writeFields(&b, categoryFields, rec)
	case *entity.Command:
		writeFields(&b, commandFields, rec)
		appendHandler(&b, rec)
	}
	return b.String()
}

// appendHandler writes the mandatory handler line. It is not part of the
// field table: it is never absent and always closes the block.
func appendHandler(b *strings.Builder, c *entity.Command) {
	writeLine(b, "handler", c.Handler)
}

func writeFields[R any](b *strings.Builder, fields []field[R], rec R) {
	for _, f := range fields {
		if f.scalar != nil {
			if v, ok := f.scalar(rec); ok {
				writeLine(b, f.key, v)
			}
			continue
		}
		for _, v := range f.list(rec) {
			writeLine(b, f.key, v)
		}
	}
}

func writeLine(b *strings.Builder, key, value string) {
	b.WriteString(indent)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
}

func optString(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func optInt(n *int) (string, bool) {
	if n == nil {
		return "", false
	}
	return strconv.Itoa(*n), true
}
