/*
Package jobentity maps job records onto a replicated key-value table.

A job record is identified by two free-form strings, a job type and a job
id. jobentity derives canonical storage keys from them and converts records
to and from the schema-less property bags the table store works with.

Packages:
  - entity: key derivation and the Record ⇄ PropertyBag codec
  - storagemodels: the PropertyBag shape
  - datastore: the BagStore interface, with DynamoDB (ddb) and in-memory (mock) stores
  - errors: semantic error types
  - config, fixtures: environment configuration and YAML seed files

Basic Usage:

	store, _ := ddb.NewDynamodbBagStore(ctx, key, secret, "us-east-1", "", "jobs")
	repo := jobentity.NewRepository(store)

	rec, _ := repo.Create(ctx, "Night Build", "42", entity.NewRandomMessage())
	rec.Message = "done"
	rec, err := repo.Update(ctx, rec) // fails with ErrConditionFailed on a stale etag
*/
package jobentity
