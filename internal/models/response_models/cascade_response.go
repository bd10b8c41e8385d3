package response_models

// CascadeFailure records one item a cascade could not delete. The
// cascade keeps going past failures, so a report can carry several.
type CascadeFailure struct {
	Kind  string `json:"kind"` // "poi" or "image"
	ID    string `json:"id"`
	Error string `json:"error"`
}

// CascadeReport is the outcome of a best-effort cascade delete. It
// distinguishes a fully successful cascade from a partial one instead
// of swallowing per-item errors.
type CascadeReport struct {
	PoisDeleted       int              `json:"pois_deleted"`
	ImagesDeleted     int              `json:"images_deleted"`
	CategoriesDeleted int              `json:"categories_deleted"`
	Failures          []CascadeFailure `json:"failures,omitempty"`
}

func (r *CascadeReport) Complete() bool {
	return len(r.Failures) == 0
}

func (r *CascadeReport) AddFailure(kind, id string, err error) {
	r.Failures = append(r.Failures, CascadeFailure{
		Kind:  kind,
		ID:    id,
		Error: err.Error(),
	})
}

// Merge folds a nested cascade's report into this one.
func (r *CascadeReport) Merge(other CascadeReport) {
	r.PoisDeleted += other.PoisDeleted
	r.ImagesDeleted += other.ImagesDeleted
	r.CategoriesDeleted += other.CategoriesDeleted
	r.Failures = append(r.Failures, other.Failures...)
}
