package freelance

type CreateInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Title        string
	Description  *string
	Location     *string
	Availability Availability
	HourlyRate   *float64
}

// Field carries an optional update for a nullable attribute. Set reports
// whether the caller supplied the attribute at all; a set Field with a nil
// Value clears it.
type Field[T any] struct {
	Set   bool
	Value *T
}

func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

func (f Field[T]) apply(dst **T) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	v := *f.Value
	*dst = &v
}

// UpdateInput is a partial profile update. Nil pointers on required
// attributes keep the stored value.
type UpdateInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        Field[string]
	Title        *string
	Description  Field[string]
	Location     Field[string]
	Availability *Availability
	HourlyRate   Field[float64]
}

// Merge returns p with every supplied attribute of in written over it.
// Timestamps are left to the caller.
func (in UpdateInput) Merge(p Profile) Profile {
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Availability != nil {
		p.Availability = *in.Availability
	}
	in.Phone.apply(&p.Phone)
	in.Description.apply(&p.Description)
	in.Location.apply(&p.Location)
	in.HourlyRate.apply(&p.HourlyRate)
	return p
}

type CreateLinkInput struct {
	FreelanceID string
	Platform    Platform
	URL         string
	Title       *string
}
