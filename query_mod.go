package bookdeal

// ContractMod narrows a contract query. A contract is kept when every mod
// returns true.
type ContractMod func(c *Contract) bool

func ByAuthor(author *Author) ContractMod {
	return func(c *Contract) bool { return authorOf(author, c) }
}

func ByBook(book *Book) ContractMod {
	return func(c *Contract) bool { return bookOf(book, c) }
}

// OnDate matches contracts whose date string equals date exactly.
func OnDate(date string) ContractMod {
	return func(c *Contract) bool { return c.date == date }
}

func applyMods(c *Contract, mods []ContractMod) bool {
	for _, mod := range mods {
		if !mod(c) {
			return false
		}
	}

	return true
}
