package owners

import "time"

// Owner es la representación legacy de un dueño/refugio, anterior al
// modelo de perfiles con identidad externa. Se mantiene persistida
// (la usa el seed) pero no expone rutas HTTP.
type Owner struct {
	ID    string
	Name  string
	Email string
	Phone string

	CreatedAt time.Time
}
