package quotefile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"oneway-quote/internal/errors"
)

// hclFile mirrors File with blocks for fees and the discount:
//
//	client  = "Andi"
//	uploads = 40
//	logo    = "client"
//
//	fee "Express" {
//	  amount = 50000
//	}
//
//	discount "percent" {
//	  value = 10
//	}
type hclFile struct {
	Client   string       `hcl:"client,optional"`
	Shop     string       `hcl:"shop,optional"`
	Uploads  int          `hcl:"uploads,optional"`
	Photos   int          `hcl:"photos,optional"`
	Banners  int          `hcl:"banners,optional"`
	Videos   int          `hcl:"videos,optional"`
	Logo     string       `hcl:"logo,optional"`
	Fees     []hclFee     `hcl:"fee,block"`
	Discount *hclDiscount `hcl:"discount,block"`
}

type hclFee struct {
	Label  string `hcl:"label,label"`
	Amount string `hcl:"amount"`
}

type hclDiscount struct {
	Kind  string `hcl:"kind,label"`
	Value string `hcl:"value,optional"`
}

func parseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, hclError(diags, filename)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, hclError(diags, filename)
	}

	f := &File{
		Client:  raw.Client,
		Shop:    raw.Shop,
		Uploads: raw.Uploads,
		Photos:  raw.Photos,
		Banners: raw.Banners,
		Videos:  raw.Videos,
		Logo:    raw.Logo,
	}
	for _, fee := range raw.Fees {
		f.Fees = append(f.Fees, Fee{Label: fee.Label, Amount: Amount(fee.Amount)})
	}
	if raw.Discount != nil {
		f.Discount = &Discount{Kind: raw.Discount.Kind, Value: Amount(raw.Discount.Value)}
	}
	return f, nil
}

func hclError(diags hcl.Diagnostics, filename string) error {
	err := errors.Parsing("invalid HCL quote file", diags).WithContext("file", filename)
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			return err.WithContext("line", d.Subject.Start.Line)
		}
	}
	return err
}
