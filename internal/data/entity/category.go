package entity

type Category struct {
	BaseNoDelete
	Name       string  `db:"name"`
	Slug       string  `db:"slug"`
	CoverImage *string `db:"cover_image"`
}
