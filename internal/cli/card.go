package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/cardsearch/internal/card"
	"github.com/roach88/cardsearch/internal/projection"
	"github.com/roach88/cardsearch/internal/query"
)

// FieldValue is one searchable field of a card as the query language sees it.
type FieldValue struct {
	Field string `json:"field"`
	Value string `json:"value,omitempty"` // empty when the field does not apply
}

// Printing is one printing of a card with its release date, when the
// catalog knows the set.
type Printing struct {
	Set    string `json:"set"`
	Code   string `json:"code"`
	Rarity string `json:"rarity"`
	Date   string `json:"date,omitempty"` // YYYY-MM-DD
}

// CardView is the card command payload.
type CardView struct {
	Card      card.Card    `json:"card"`
	Fields    []FieldValue `json:"fields"`
	Printings []Printing   `json:"printings"`
}

// NewCardCommand creates the card command.
func NewCardCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card <id>",
		Short: "Show one card and its searchable fields",
		Long: `Show one card record together with the value of every searchable
field, as seen by queries.

Examples:
  cardsearch card 46986414
  cardsearch card 46986414 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCard(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	id, err := strconv.Atoi(arg)
	if err != nil {
		formatter.Error(ErrCodeInvalidArg, fmt.Sprintf("card id must be an integer, got %q", arg), nil)
		return WrapExitError(ExitFailure, "invalid card id", err)
	}

	a, err := openApp(cmd, opts)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	defer a.Close()

	c, ok := a.Card(id)
	p, hasProjection := a.Snapshot().Projection(id)
	if !ok || !hasProjection {
		formatter.Error(ErrCodeCardNotFound, fmt.Sprintf("card %d not found", id), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("card %d not found", id))
	}

	view := CardView{
		Card:      c,
		Fields:    fieldValues(p),
		Printings: printings(c, a.Snapshot().Catalog()),
	}
	if opts.Format == "json" {
		return formatter.Success(view)
	}
	writeCardText(cmd.OutOrStdout(), view)
	return nil
}

// fieldValues lists every field except the rules text, which is shown as is.
func fieldValues(p *projection.Projection) []FieldValue {
	var out []FieldValue
	for _, f := range query.Fields() {
		if f == query.Text {
			continue
		}
		v := p.Value(f)
		if n, ok := v.(query.Numerical); ok && f.HasSentinel() && int(n) == query.Sentinel {
			v = query.String(query.SentinelMarker)
		}
		out = append(out, FieldValue{Field: f.Display(), Value: displayValue(v)})
	}
	return out
}

// printings lists the printings of c in record order.
func printings(c card.Card, catalog card.Catalog) []Printing {
	out := make([]Printing, len(c.CardSets))
	for i, cs := range c.CardSets {
		out[i] = Printing{Set: cs.SetName, Code: cs.SetCode, Rarity: cs.SetRarity}
		if date, ok := catalog.ReleaseDate(cs.SetName); ok {
			out[i].Date = date.Format(time.DateOnly)
		}
	}
	return out
}

func displayValue(v query.Value) string {
	switch val := v.(type) {
	case query.Absent:
		return ""
	case query.Multiple:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = query.FormatValue(item, true)
		}
		return strings.Join(parts, ", ")
	case query.MultiplePartial:
		return strings.Join(val, ", ")
	default:
		return query.FormatValue(v, true)
	}
}

func writeCardText(w io.Writer, view CardView) {
	fmt.Fprintf(w, "%s [%d]\n", view.Card.Name, view.Card.ID)
	fmt.Fprintln(w, typeLine(view.Card))
	fmt.Fprintln(w)
	fmt.Fprintln(w, view.Card.Desc)
	fmt.Fprintln(w)
	for _, fv := range view.Fields {
		value := fv.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%-15s %s\n", fv.Field, value)
	}

	if len(view.Printings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Printings:")
	for _, pr := range view.Printings {
		fmt.Fprintf(w, "  %s: %s (%s)", pr.Set, pr.Code, pr.Rarity)
		if pr.Date != "" {
			fmt.Fprintf(w, " - %s", pr.Date)
		}
		fmt.Fprintln(w)
	}
}
