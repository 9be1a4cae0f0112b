/*
Package entity maps job records to and from their table store representation.

A job record is identified by a job type and a job id, both free-form
strings supplied by users. Keys are derived by lower-casing them and
stripping spaces:

	pk, rk := entity.DeriveKeys("Night Build", "Run 42") // "nightbuild", "run42"

Records are converted to property bags before a write and back after a read:

	rec := entity.NewRecord("Night Build", "Run 42", "hello")
	bag := entity.ToPropertyBag(rec)
	back, err := entity.ToRecord(bag)

ToRecord never re-derives keys; whatever partition and row key the bag
carries is what the record gets. Equal compares business fields only, so
two records that differ only in etag or timestamp are equal.
*/
package entity
