package entity

// StudentRegistration is the Student's own registration constant.
const StudentRegistration int32 = 12345

// Student is the concrete Person variant.
//
// Its name, age and Grade shadow the fields of the embedded Base. TrueAge
// is not shadowed and keeps reading the base age.
type Student struct {
	Base

	name string
	age  float64

	// Grade is the student's grade level, independent of Base.Grade.
	Grade int64
}

var _ Person = (*Student)(nil)

// NewStudent returns a Student in the given grade. The base grade stays zero.
func NewStudent(grade int32) *Student {
	return &Student{Grade: int64(grade)}
}

// Name returns the student's name.
func (s *Student) Name() string { return s.name }

// SetName stores the student's name.
func (s *Student) SetName(name string) { s.name = name }

// Age returns the student's age.
func (s *Student) Age() float64 { return s.age }

// SetAge stores the student's age.
func (s *Student) SetAge(age float64) { s.age = age }

// Registration returns StudentRegistration.
func (s *Student) Registration() int32 { return StudentRegistration }
