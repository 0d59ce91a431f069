package database

// Repository provides data access for rooms, tables, users and notes.
// Read methods return (nil, nil) when the row does not exist; callers in
// the services layer translate that into their own not-found errors.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}
