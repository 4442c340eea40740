package parcel

import (
	"fmt"

	"parcelmatch/internal/pkg/errs"
)

// ActionType distinguishes whether the owner is sending or receiving.
type ActionType string

const (
	ActionSend    ActionType = "send"
	ActionReceive ActionType = "receive"
)

// Validate checks the action type against the allowed values.
func (a ActionType) Validate() error {
	switch a {
	case ActionSend, ActionReceive:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("actionType",
		fmt.Errorf("%q is not a valid action type", string(a)))
}

// Category describes the kind of goods being shipped.
type Category string

const (
	CategoryPackage Category = "package"
	CategoryFood    Category = "food"
	CategoryDrink   Category = "drink"

	// DefaultCategory applies when the sender does not specify one.
	DefaultCategory = CategoryPackage
)

// Validate checks the category against the allowed values.
func (c Category) Validate() error {
	switch c {
	case CategoryPackage, CategoryFood, CategoryDrink:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", string(c)))
}

// Size is the rough size class of the shipment.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"

	// DefaultSize applies when the sender does not specify one.
	DefaultSize = SizeMedium
)

// Validate checks the size against the allowed values.
func (s Size) Validate() error {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("%q is not a valid size", string(s)))
}
