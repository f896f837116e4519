package testutil

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
)

type MariaDBContainerInfo struct {
	DSN     string
	Cleanup func()
}

// StartMariaDBContainer runs MariaDB and returns a DSN on the "testdb"
// database, which SetupTestDB uses as a name prefix.
func StartMariaDBContainer() (*MariaDBContainerInfo, error) {
	const internalPort = "3306/tcp"

	c, err := startContainer(&dockertest.RunOptions{
		Repository: "mariadb",
		Tag:        "10.11",
		Env:        []string{"MARIADB_ROOT_PASSWORD=secret"},
	}, func(r *dockertest.Resource) error {
		dsn := fmt.Sprintf("root:secret@(localhost:%s)/mysql?parseTime=true", r.GetPort(internalPort))
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	})
	if err != nil {
		return nil, err
	}

	return &MariaDBContainerInfo{
		DSN:     fmt.Sprintf("root:secret@(localhost:%s)/testdb?parseTime=true", c.port(internalPort)),
		Cleanup: c.purge,
	}, nil
}
