package session

// DefaultSeed is the fixed user list loaded into the store at startup.
func DefaultSeed() []SeedUser {
	return []SeedUser{
		{
			Email:       "admin@watchlist.local",
			Password:    "123456",
			Permissions: []string{"movies.list", "movies.create", "watchlists.edit"},
			Roles:       []string{"administrator"},
		},
		{
			Email:       "viewer@watchlist.local",
			Password:    "123456",
			Permissions: []string{"movies.list"},
			Roles:       []string{"viewer"},
		},
	}
}
