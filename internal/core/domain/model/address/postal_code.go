package address

import (
	"errors"
	"strings"

	"parcelmatch/internal/pkg/errs"
)

// ErrPostalCodeIsNotConstructed is returned when a PostalCode instance was
// not created through NewPostalCode.
var ErrPostalCodeIsNotConstructed = errors.New("PostalCode must be created via NewPostalCode")

// PostalCode is the reference entity behind every address. It is created on
// first reference and never deleted while addresses point at it.
type PostalCode struct {
	code    string
	city    string
	country string

	isConstructed bool
}

// NewPostalCode creates a PostalCode keyed by its code.
func NewPostalCode(code, city, country string) (*PostalCode, error) {
	p := &PostalCode{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setCode(code),
		p.setCity(city),
		p.setCountry(country),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the PostalCode was created through NewPostalCode.
func (p *PostalCode) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostalCodeIsNotConstructed
	}
	return nil
}

// Code returns the postal code, the entity's unique key.
func (p *PostalCode) Code() string {
	return p.code
}

// City returns the city the postal code belongs to.
func (p *PostalCode) City() string {
	return p.city
}

// Country returns the country the postal code belongs to.
func (p *PostalCode) Country() string {
	return p.country
}

func (p *PostalCode) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *PostalCode) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	p.city = city
	return nil
}

func (p *PostalCode) setCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return errs.NewValueIsRequiredError("country")
	}
	p.country = country
	return nil
}
