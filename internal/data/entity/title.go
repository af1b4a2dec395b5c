package entity

type Title struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Year        int     `db:"year"`
	Description *string `db:"description"`
	CategoryID  *int64  `db:"category_id"`

	// Average review score rounded to one decimal, nil until the first
	// review lands. Computed in queries, never stored.
	Rating *float64 `db:"rating"`
}
