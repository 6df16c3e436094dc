// Package seed loads forum fixtures from YAML and writes them into an empty
// questions store.
//
// The query layer in package forum never writes. Seeding is the only path
// that populates the tables, and it is meant for first boot, demos and tests:
//
//	fx, err := seed.Load("configs/seed.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := seed.Apply(ctx, db, fx, logger); err != nil {
//	    return err
//	}
//
// Apply validates the fixture first, inserts everything in one transaction
// and does nothing if the users table already has rows.
package seed
