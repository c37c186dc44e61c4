package models

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// CooccurrencePair is one row of the cross-gene co-occurrence summary.
// Members are stored in canonical order (MemberA < MemberB); the table is
// rebuilt wholesale for each analysis run.
type CooccurrencePair struct {
	bun.BaseModel `bun:"table:cooccurrence_pairs,alias:cp"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	MemberA   string    `bun:"member_a,notnull,unique:cooccur_members" json:"member_a"`
	MemberB   string    `bun:"member_b,notnull,unique:cooccur_members" json:"member_b"`
	Count     int       `bun:"count,notnull" json:"count"`
	Support   float64   `bun:"support,notnull" json:"support"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Validate checks canonical ordering and counter sanity.
func (p *CooccurrencePair) Validate() error {
	if p.MemberA == "" || p.MemberB == "" {
		return errors.New("both pair members are required")
	}
	if p.MemberB < p.MemberA {
		return errors.New("pair members must be in canonical order")
	}
	if p.Count <= 0 {
		return errors.New("count must be positive")
	}
	if p.Support < 0 || p.Support > 1 {
		return errors.New("support must be within [0,1]")
	}
	return nil
}
