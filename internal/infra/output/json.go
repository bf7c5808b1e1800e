package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// JSON renders an indented array. brandInfo is omitted when absent and
// prices are emitted as numbers. When Select is set, the JSONPath expression
// is evaluated against that array and only its result is written.
type JSON struct {
	Select string
}

var _ ports.Formatter = (*JSON)(nil)

type jsonBrand struct {
	Name        string `json:"name"`
	ReleaseDate string `json:"releaseDate"`
}

type jsonVehicle struct {
	Type      string                 `json:"type"`
	Brand     string                 `json:"brand,omitempty"`
	Model     string                 `json:"model"`
	Prices    map[string]json.Number `json:"prices"`
	BrandInfo *jsonBrand             `json:"brandInfo,omitempty"`
}

func (j *JSON) Name() string { return FormatJSON }

func (j *JSON) Format(w io.Writer, vehicles []domain.Vehicle) error {
	doc := make([]jsonVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		doc = append(doc, toJSONVehicle(v))
	}

	var out any = doc
	if j.Select != "" {
		sel, err := selectPath(j.Select, doc)
		if err != nil {
			return err
		}
		out = sel
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "output.json", Kind: domain.KindExecution, Err: err}
	}
	return writeString(w, string(b)+"\n")
}

func toJSONVehicle(v domain.Vehicle) jsonVehicle {
	prices := make(map[string]json.Number, len(v.Prices))
	for cur, amt := range v.Prices {
		prices[cur] = json.Number(amt.String())
	}

	out := jsonVehicle{
		Type:   v.Type,
		Brand:  v.Brand,
		Model:  v.Model,
		Prices: prices,
	}
	if v.BrandInfo != nil {
		out.BrandInfo = &jsonBrand{
			Name:        v.BrandInfo.Name,
			ReleaseDate: v.BrandInfo.ReleaseDate.Format(domain.DateLayout),
		}
	}
	return out
}

// selectPath round-trips doc through generic JSON so jsonpath sees plain maps.
func selectPath(expr string, doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &domain.OpError{Op: "output.json", Kind: domain.KindExecution, Err: err}
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, &domain.OpError{Op: "output.json", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, generic)
	if err != nil {
		return nil, domain.InvalidArgument("output.json.select", fmt.Errorf("jsonpath %q: %w", expr, err))
	}
	return val, nil
}
