package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id   int64
	name string
}

func TestRenderTableHTMLEscapesCells(t *testing.T) {
	cols := []Column[item]{
		Text("Name", "col-name", func(i item) string { return i.name }),
		Right("ID", "col-id", func(i item) string { return "#" }),
	}
	out := RenderTableHTML(cols, []item{{id: 7, name: `<b>"Oak"</b>`}}, func(i item) int64 { return i.id }, "none")

	assert.Contains(t, out, `<th class="col-name">Name</th>`)
	assert.Contains(t, out, `<th class="right col-id">ID</th>`)
	assert.Contains(t, out, `<tr data-id="7">`)
	assert.Contains(t, out, `&lt;b&gt;&#34;Oak&#34;&lt;/b&gt;`)
	assert.NotContains(t, out, "<b>")
}

func TestRenderTableHTMLEmpty(t *testing.T) {
	cols := []Column[item]{
		Text("Name", "", func(i item) string { return i.name }),
		Center("Status", "", func(i item) string { return "" }),
	}
	out := RenderTableHTML(cols, nil, nil, "No records.")
	assert.Contains(t, out, `<td colspan="2">No records.</td>`)
	assert.Equal(t, 1, strings.Count(out, "<tr>")-1)
}
