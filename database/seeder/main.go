package main

import (
	"fmt"
	"sync"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/seeder/seeds"
	"github.com/ehihameneromosele/fullblog2c/metal/env"
	"github.com/ehihameneromosele/fullblog2c/metal/kernel"
	"github.com/ehihameneromosele/fullblog2c/pkg/cli"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())

	if err != nil {
		panic(err)
	}

	environment = secrets
}

func main() {
	cli.ClearScreen()

	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	cli.Successln("db truncated successfully ...")

	// Users, categories and posts seed sequentially because everything
	// below depends on them.
	admin, reader := seeder.SeedUsers()
	cli.Successln("users seeded ...")

	categories := seeder.SeedCategories()
	cli.Warningln("categories seeded ...")

	posts := seeder.SeedPosts(admin, categories)
	cli.Magentaln("posts seeded ...")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		cli.Blueln("seeding comments ...")
		seeder.SeedComments(reader, posts...)
	}()

	go func() {
		defer wg.Done()

		cli.Cyanln("seeding likes ...")
		seeder.SeedLikes(reader, posts...)
	}()

	wg.Wait()

	printSummary(dbConnection)

	cli.Successln("db seeded successfully ...")
}

func printSummary(conn *database.Connection) {
	for _, table := range database.GetSchemaTables() {
		var count int64

		conn.Sql().Table(table).Count(&count)

		cli.Grayln(fmt.Sprintf("  %s: %d rows", table, count))
	}
}
