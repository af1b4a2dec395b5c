package entity

type TitleGenre struct {
	ID      int64 `db:"id"`
	TitleID int64 `db:"title_id"`
	GenreID int64 `db:"genre_id"`
}
