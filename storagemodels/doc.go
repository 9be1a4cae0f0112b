/*
Package storagemodels defines the storage-facing data structures of jobentity.

PropertyBag is the generic, schema-less shape an entity takes inside the
table store: a partition key, a row key, the store-assigned timestamp and
etag, and a map of DynamoDB attribute values.

	bag := storagemodels.NewPropertyBag("nightbuild", "42", "", map[string]types.AttributeValue{
	    "JobType": &types.AttributeValueMemberS{Value: "Night Build"},
	    "JobId":   &types.AttributeValueMemberS{Value: "42"},
	    "Message": &types.AttributeValueMemberS{Value: "hello"},
	})

	jobType, err := bag.StringProperty("JobType")

StringProperty is the only accessor; it reports absent properties and
non-string values with the typed errors from the errors package.
*/
package storagemodels
