package entity

import (
	"time"
)

type Review struct {
	ID       int64     `db:"id"`
	TitleID  int64     `db:"title_id"`
	AuthorID int64     `db:"author_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"` // 1-10
	PubDate  time.Time `db:"pub_date"`
}
