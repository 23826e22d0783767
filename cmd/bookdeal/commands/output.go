package commands

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"pollex.nl/bookdeal"
)

type contractView struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Book      string `json:"book"`
	Date      string `json:"date"`
	Royalties int    `json:"royalties"`
}

type royaltyView struct {
	Author    string `json:"author"`
	Royalties int    `json:"royalties"`
}

type bookAuthorsView struct {
	Book    string   `json:"book"`
	Authors []string `json:"authors"`
}

func contractViews(contracts []*bookdeal.Contract) []contractView {
	return lo.Map(contracts, func(c *bookdeal.Contract, _ int) contractView {
		return contractView{
			ID:        c.ID().String(),
			Author:    c.Author().Name(),
			Book:      c.Book().Title(),
			Date:      c.Date(),
			Royalties: c.Royalties(),
		}
	})
}

func royaltyViews(authors []*bookdeal.Author) []royaltyView {
	return lo.Map(authors, func(a *bookdeal.Author, _ int) royaltyView {
		return royaltyView{Author: a.Name(), Royalties: a.TotalRoyalties()}
	})
}

func bookAuthorsViewOf(book *bookdeal.Book) bookAuthorsView {
	return bookAuthorsView{
		Book:    book.Title(),
		Authors: lo.Map(book.Authors(), func(a *bookdeal.Author, _ int) string { return a.Name() }),
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
