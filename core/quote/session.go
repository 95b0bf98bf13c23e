// Package quote holds the editable state behind one quote: who it is for,
// what was ordered, extra fees and the discount. Every setter clamps its
// input the way the entry form does, so the engine only ever sees valid data.
package quote

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"oneway-quote/core/cost"
	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
)

// Session is a single in-memory quote. It is not safe for concurrent use.
type Session struct {
	client     string
	shop       string
	quantities types.ServiceQuantities
	logo       types.LogoSelection
	fees       []types.ExtraFee
	discount   types.DiscountConfig

	newID func() string
}

// Option configures a Session
type Option func(*Session)

// WithIDGenerator replaces uuid.NewString for extra-fee IDs
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) { s.newID = gen }
}

// NewSession returns an empty quote
func NewSession(opts ...Option) *Session {
	s := &Session{
		discount: types.NoDiscount(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Client returns the client name
func (s *Session) Client() string { return s.client }

// Shop returns the shop name
func (s *Session) Shop() string { return s.shop }

// SetClient sets the client name
func (s *Session) SetClient(name string) { s.client = strings.TrimSpace(name) }

// SetShop sets the shop name
func (s *Session) SetShop(name string) { s.shop = strings.TrimSpace(name) }

// Quantities returns the current counts
func (s *Session) Quantities() types.ServiceQuantities { return s.quantities }

// SetQuantities replaces all counts, clamping negatives to zero
func (s *Session) SetQuantities(q types.ServiceQuantities) { s.quantities = q.Clamp() }

// SetUploads sets the product upload count
func (s *Session) SetUploads(n int) { s.quantities.Uploads = types.ClampCount(n) }

// SetPhotos sets the photo design count
func (s *Session) SetPhotos(n int) { s.quantities.Photos = types.ClampCount(n) }

// SetBanners sets the banner count
func (s *Session) SetBanners(n int) { s.quantities.Banners = types.ClampCount(n) }

// SetVideos sets the video count
func (s *Session) SetVideos(n int) { s.quantities.Videos = types.ClampCount(n) }

// Logo returns the logo option
func (s *Session) Logo() types.LogoSelection { return s.logo }

// SetLogo sets the logo option
func (s *Session) SetLogo(sel types.LogoSelection) { s.logo = sel }

// ExtraFees returns a copy of the fee list in insertion order
func (s *Session) ExtraFees() []types.ExtraFee {
	out := make([]types.ExtraFee, len(s.fees))
	copy(out, s.fees)
	return out
}

type feeDraft struct {
	Label  string          `validate:"required,max=120"`
	Amount decimal.Decimal `validate:"gte=0"`
}

var validate = newValidator()

// newValidator validates decimal.Decimal fields by their sign, so no float
// conversion can turn a tiny negative amount into -0.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// AddExtraFee appends a fee. The label must be non-empty after trimming and
// amountText must parse as a decimal >= 0. Returns the stored fee.
func (s *Session) AddExtraFee(label, amountText string) (types.ExtraFee, error) {
	label = strings.TrimSpace(label)
	amountText = strings.TrimSpace(amountText)

	if amountText == "" {
		return types.ExtraFee{}, errors.Input("fee amount is required").WithContext("label", label)
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return types.ExtraFee{}, errors.Wrap(errors.TypeInput, "fee amount is not a number", err).WithContext("amount", amountText)
	}

	if err := validate.Struct(feeDraft{Label: label, Amount: amount}); err != nil {
		return types.ExtraFee{}, feeValidationError(err)
	}

	fee := types.ExtraFee{ID: s.newID(), Label: label, Amount: amount}
	s.fees = append(s.fees, fee)
	return fee, nil
}

func feeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.TypeInput, "invalid extra fee", err)
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Label":
		if fe.Tag() == "required" {
			return errors.Input("fee label is required")
		}
		return errors.Newf(errors.TypeInput, "fee label is longer than %s characters", fe.Param())
	case "Amount":
		return errors.Input("fee amount must not be negative")
	}
	return errors.Wrap(errors.TypeInput, "invalid extra fee", err)
}

// RemoveExtraFee deletes the fee with id and reports whether it existed
func (s *Session) RemoveExtraFee(id string) bool {
	for i, fee := range s.fees {
		if fee.ID == id {
			s.fees = append(s.fees[:i:i], s.fees[i+1:]...)
			return true
		}
	}
	return false
}

// Discount returns the discount config
func (s *Session) Discount() types.DiscountConfig { return s.discount }

// SetDiscountKind switches the discount mode. The value always resets to
// zero, including when kind equals the current mode.
func (s *Session) SetDiscountKind(kind types.DiscountKind) {
	s.discount = types.DiscountConfig{Kind: kind, Value: decimal.Zero}
}

// SetDiscountValue sets the value for the current mode, clamping negatives
// to zero. It is a no-op while the mode is None.
func (s *Session) SetDiscountValue(v decimal.Decimal) {
	if s.discount.Kind == types.DiscountNone {
		return
	}
	s.discount.Value = types.ClampAmount(v)
}

// State returns the engine input for the current session
func (s *Session) State() types.ServiceState {
	return types.ServiceState{
		Quantities: s.quantities,
		Logo:       s.logo,
		ExtraFees:  s.ExtraFees(),
	}
}

// Breakdown prices the session with engine
func (s *Session) Breakdown(engine *cost.Engine) types.QuoteBreakdown {
	return engine.ComputeBreakdown(s.State(), s.discount)
}

// Reset clears everything back to an empty quote
func (s *Session) Reset() {
	s.client = ""
	s.shop = ""
	s.quantities = types.ServiceQuantities{}
	s.logo = types.LogoNone
	s.fees = nil
	s.discount = types.NoDiscount()
}
