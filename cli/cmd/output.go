package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

const outputIndent = 2

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// row is one line of text output.
type row struct {
	label string
	value string
}

// result is a command result that can also be rendered as text rows.
type result interface {
	rows() []row
}

// records is the result of split.
type records []string

func (r records) rows() []row {
	out := make([]row, len(r))
	for i, s := range r {
		out[i] = row{label: strconv.Itoa(i), value: s}
	}

	return out
}

// match is the result of where.
type match struct {
	Match  string `json:"match"  yaml:"match"`
	Length int    `json:"length" yaml:"length"`
}

func (m match) rows() []row {
	return []row{
		{label: "match", value: m.Match},
		{label: "length", value: strconv.Itoa(m.Length)},
	}
}

// pair is one entry of the result of pairs.
type pair struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type pairList []pair

func (p pairList) rows() []row {
	out := make([]row, len(p))
	for i, kv := range p {
		out[i] = row{label: kv.Key, value: kv.Value}
	}

	return out
}

// write encodes r to w in format f.
func write(ctx context.Context, w io.Writer, f Format, r result) error {
	var (
		data []byte
		err  error
	)

	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		data = append(data, '\n')

	case FormatText:
		return writeText(w, r.rows())

	default:
		data, err = yaml.MarshalContext(ctx, r, yaml.Indent(outputIndent))
	}

	if err != nil {
		return ErrMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// writeText writes rows as aligned, styled label/value lines.
func writeText(w io.Writer, rows []row) error {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.label))
	}

	label := labelStyle.Width(width).Align(lipgloss.Right)

	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s  %s\n",
			label.Render(r.label),
			valueStyle.Render(strconv.Quote(r.value)),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
