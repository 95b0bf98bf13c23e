package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"oneway-quote/adapters/quotefile"
	"oneway-quote/core/output"
	"oneway-quote/core/quote"
	"oneway-quote/core/types"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
)

// quoteFlags are the flags every pricing command shares. Values given on the
// command line override the quote file.
type quoteFlags struct {
	file         string
	client       string
	shop         string
	uploads      int
	photos       int
	banners      int
	videos       int
	logo         string
	fees         []string
	discountType string
	discount     string
}

func addQuoteFlags(cmd *cobra.Command, f *quoteFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.file, "file", "", "quote file (.hcl, .yaml, .yml or .json)")
	flags.StringVar(&f.client, "client", "", "client name")
	flags.StringVar(&f.shop, "shop", "", "shop name")
	flags.IntVar(&f.uploads, "upload", 0, "number of product uploads")
	flags.IntVar(&f.photos, "photo", 0, "number of photo designs")
	flags.IntVar(&f.banners, "banner", 0, "number of store banners")
	flags.IntVar(&f.videos, "video", 0, "number of product videos")
	flags.StringVar(&f.logo, "logo", "", "logo option (none, client, full)")
	flags.StringArrayVar(&f.fees, "fee", nil, "extra fee as label=amount (repeatable)")
	flags.StringVar(&f.discountType, "discount-type", "", "discount type (none, nominal, percent)")
	flags.StringVar(&f.discount, "discount", "", "discount value: an amount for nominal, a percentage for percent")
}

// session builds the quote from the file, then applies flags that were set
func (f *quoteFlags) session(cmd *cobra.Command) (*quote.Session, error) {
	s := quote.NewSession()

	if f.file != "" {
		qf, err := quotefile.Load(f.file)
		if err != nil {
			return nil, err
		}
		if err := qf.Apply(s); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("client") {
		s.SetClient(f.client)
	}
	if changed("shop") {
		s.SetShop(f.shop)
	}
	if changed("upload") {
		s.SetUploads(f.uploads)
	}
	if changed("photo") {
		s.SetPhotos(f.photos)
	}
	if changed("banner") {
		s.SetBanners(f.banners)
	}
	if changed("video") {
		s.SetVideos(f.videos)
	}
	if changed("logo") {
		logo, err := types.ParseLogoSelection(f.logo)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "invalid --logo", err)
		}
		s.SetLogo(logo)
	}

	for _, raw := range f.fees {
		label, amount, err := splitFee(raw)
		if err != nil {
			return nil, err
		}
		if _, err := s.AddExtraFee(label, amount); err != nil {
			return nil, err
		}
	}

	if changed("discount-type") {
		kind, err := types.ParseDiscountKind(f.discountType)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "invalid --discount-type", err)
		}
		s.SetDiscountKind(kind)
	}
	if changed("discount") {
		if s.Discount().Kind == types.DiscountNone {
			return nil, errors.Input("--discount needs --discount-type nominal or percent")
		}
		v, err := decimal.NewFromString(strings.TrimSpace(f.discount))
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "--discount is not a number", err).WithContext("value", f.discount)
		}
		s.SetDiscountValue(v)
	}

	return s, nil
}

// splitFee parses label=amount; the label may itself contain '='
func splitFee(raw string) (label, amount string, err error) {
	i := strings.LastIndex(raw, "=")
	if i < 0 {
		return "", "", errors.Input("--fee must be label=amount").WithContext("fee", raw)
	}
	return raw[:i], raw[i+1:], nil
}

// document prices the quote described by the flags
func (a *app) document(cmd *cobra.Command, f *quoteFlags) (*output.Document, error) {
	s, err := f.session(cmd)
	if err != nil {
		return nil, err
	}
	return output.NewDocument(config.Get().Business.Name, s, a.engine, a.now()), nil
}
