package stoolap

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"

	// Import for database/sql driver registration
	_ "github.com/stoolap/stoolap/pkg/driver"
)

// DB struct
type DB struct {
	Conn *sql.DB
}

// Connect opens the embedded database. The DSN is either file://<path> for a
// persistent store or memory:// for tests.
func Connect(dsn string) (*DB, error) {
	if dsn == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	conn, err := sql.Open("stoolap", dsn)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Info("Connection string: ", dsn)
	return &DB{Conn: conn}, nil
}

// Disconnect func
func Disconnect(db *sql.DB) {
	if err := db.Close(); err != nil {
		logrus.Error(err)
		return
	}
	logrus.Println("Connection with the embedded database has closed")
}
