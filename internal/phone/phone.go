// Package phone classifies and formats phone numbers using libphonenumber metadata.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/smsdesk/smsdesk/internal/config"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
	"github.com/smsdesk/smsdesk/internal/types"
)

// Classification describes what kind of number a raw input is.
type Classification struct {
	IsMobile    bool   `json:"is_mobile"`
	CountryCode string `json:"country_code"`
	// E164 is the canonical form of the classified number
	E164 string `json:"e164"`
}

// Normalizer parses raw phone input. Inputs without an international
// prefix are read as numbers of the default region.
type Normalizer struct {
	defaultRegion string
}

func NewNormalizer(cfg *config.Configuration) *Normalizer {
	return New(cfg.Contacts.DefaultRegion)
}

func New(defaultRegion string) *Normalizer {
	if defaultRegion == "" {
		defaultRegion = types.DefaultCountry
	}
	return &Normalizer{defaultRegion: strings.ToUpper(defaultRegion)}
}

// DefaultRegion is the region hint used for national format input
func (n *Normalizer) DefaultRegion() string {
	return n.defaultRegion
}

// Classify reports whether raw is a mobile-type number and which country it belongs to.
func (n *Normalizer) Classify(raw string) (*Classification, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), n.defaultRegion)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessagef("parse phone number %q", raw).
			Mark(ierr.ErrUnparsablePhoneNumber)
	}

	return &Classification{
		IsMobile:    isMobileType(phonenumbers.GetNumberType(num)),
		CountryCode: phonenumbers.GetRegionCodeForNumber(num),
		E164:        phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}

// Normalize formats raw as E.164 reading it as a number of countryCode.
func (n *Normalizer) Normalize(raw, countryCode string) (string, error) {
	region := strings.ToUpper(countryCode)
	if region == "" {
		region = n.defaultRegion
	}

	num, err := phonenumbers.Parse(strings.TrimSpace(raw), region)
	if err != nil {
		return "", ierr.WithError(err).
			WithMessagef("normalize phone number %q for %s", raw, region).
			Mark(ierr.ErrInvalidPhoneNumber)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Only MOBILE counts. FIXED_LINE_OR_MOBILE numbers (shared ranges, e.g. US) are rejected.
func isMobileType(t phonenumbers.PhoneNumberType) bool {
	return t == phonenumbers.MOBILE
}
