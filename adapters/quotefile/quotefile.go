// Package quotefile loads a saved quote from HCL, YAML or JSON so repeat
// orders can be priced without retyping them.
package quotefile

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"oneway-quote/core/quote"
	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// Syntax identifies a quote file syntax
type Syntax string

const (
	SyntaxHCL  Syntax = "hcl"
	SyntaxYAML Syntax = "yaml"
	SyntaxJSON Syntax = "json"
)

// File is a decoded quote file. Counts and amounts are applied through a
// quote.Session, which clamps and validates them.
type File struct {
	Client   string    `yaml:"client" json:"client"`
	Shop     string    `yaml:"shop" json:"shop"`
	Uploads  int       `yaml:"uploads" json:"uploads"`
	Photos   int       `yaml:"photos" json:"photos"`
	Banners  int       `yaml:"banners" json:"banners"`
	Videos   int       `yaml:"videos" json:"videos"`
	Logo     string    `yaml:"logo" json:"logo"`
	Discount *Discount `yaml:"discount" json:"discount"`
	Fees     []Fee     `yaml:"fees" json:"fees"`
}

// Fee is an extra fee entry
type Fee struct {
	Label  string `yaml:"label" json:"label"`
	Amount Amount `yaml:"amount" json:"amount"`
}

// Discount is the discount entry
type Discount struct {
	Kind  string `yaml:"kind" json:"kind"`
	Value Amount `yaml:"value" json:"value"`
}

// Amount keeps the literal text of a number so no precision is lost
// before it reaches decimal parsing. Both 50000 and "50000" are accepted.
type Amount string

// UnmarshalJSON accepts a JSON number or string
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf(errors.TypeParsing, "line %d: amount must be a scalar", node.Line)
	}
	*a = Amount(node.Value)
	return nil
}

// SyntaxFor picks the syntax from the file extension
func SyntaxFor(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return SyntaxHCL, nil
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	case ".json":
		return SyntaxJSON, nil
	}
	return "", errors.NotSupported("quote file extension").WithContext("path", path)
}

// Load reads and decodes the quote file at path
func Load(path string) (*File, error) {
	syntax, err := SyntaxFor(path)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quote file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "read quote file %s", path)
	}

	f, err := Parse(src, path, syntax)
	if err != nil {
		return nil, err
	}
	logging.Debug("loaded quote file", zap.String("path", path), zap.String("syntax", string(syntax)))
	return f, nil
}

// Parse decodes src; filename is only used in diagnostics
func Parse(src []byte, filename string, syntax Syntax) (*File, error) {
	switch syntax {
	case SyntaxHCL:
		return parseHCL(src, filename)
	case SyntaxYAML:
		return parseYAML(src, filename)
	case SyntaxJSON:
		return parseJSON(src, filename)
	}
	return nil, errors.NotSupported("quote file syntax " + string(syntax))
}

func parseYAML(src []byte, filename string) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, errors.Parsing("invalid YAML quote file", err).WithContext("file", filename)
	}
	return f, nil
}

func parseJSON(src []byte, filename string) (*File, error) {
	f := &File{}
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, errors.Parsing("invalid JSON quote file", err).WithContext("file", filename)
	}
	return f, nil
}

// Apply writes the file into s. Every field goes through the session setters,
// so negative counts clamp and fees are validated like interactive entry.
func (f *File) Apply(s *quote.Session) error {
	if f.Client != "" {
		s.SetClient(f.Client)
	}
	if f.Shop != "" {
		s.SetShop(f.Shop)
	}
	s.SetQuantities(types.ServiceQuantities{
		Uploads: f.Uploads,
		Photos:  f.Photos,
		Banners: f.Banners,
		Videos:  f.Videos,
	})

	logo, err := types.ParseLogoSelection(f.Logo)
	if err != nil {
		return errors.Wrap(errors.TypeInput, "invalid logo", err)
	}
	s.SetLogo(logo)

	if f.Discount != nil {
		kind, err := types.ParseDiscountKind(f.Discount.Kind)
		if err != nil {
			return errors.Wrap(errors.TypeInput, "invalid discount", err)
		}
		s.SetDiscountKind(kind)
		if f.Discount.Value != "" {
			v, err := decimal.NewFromString(strings.TrimSpace(string(f.Discount.Value)))
			if err != nil {
				return errors.Wrap(errors.TypeInput, "discount value is not a number", err).
					WithContext("value", string(f.Discount.Value))
			}
			s.SetDiscountValue(v)
		}
	}

	for _, fee := range f.Fees {
		if _, err := s.AddExtraFee(fee.Label, string(fee.Amount)); err != nil {
			return err
		}
	}
	return nil
}
