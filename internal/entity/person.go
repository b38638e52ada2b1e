// Package entity holds the Person and Student value holders.
//
// Student embeds Base but re-declares its own name, age and grade storage,
// so the base copies and the Student copies never see each other's writes.
// The registration constant is also declared twice with the same literal.
// Both are known defects kept as observed.
package entity

// BaseRegistration is the fixed registration carried by every Base.
const BaseRegistration int32 = 12345

// trueAgeOffset is added to the stored age by TrueAge.
const trueAgeOffset = 20

// Person is satisfied by every concrete person variant.
type Person interface {
	Name() string
	SetName(name string)
	Age() float64
	SetAge(age float64)
	TrueAge() float64
	FixedRegistration() int32
	// Registration must be supplied by the concrete variant.
	Registration() int32
	// Core returns the base-typed view of the variant.
	Core() *Base
}

// Base is the shared state of a person. It does not implement
// Registration, so a Base on its own is not a Person.
type Base struct {
	name string
	age  float64

	// Grade is the base's grade level.
	Grade int32
}

// Name returns the stored name.
func (b *Base) Name() string { return b.name }

// SetName stores the name without validation.
func (b *Base) SetName(name string) { b.name = name }

// Age returns the stored age.
func (b *Base) Age() float64 { return b.age }

// SetAge stores the age without validation.
func (b *Base) SetAge(age float64) { b.age = age }

// TrueAge returns the stored age plus 20.
func (b *Base) TrueAge() float64 { return b.age + trueAgeOffset }

// FixedRegistration returns BaseRegistration.
func (b *Base) FixedRegistration() int32 { return BaseRegistration }

// Core returns b.
func (b *Base) Core() *Base { return b }
