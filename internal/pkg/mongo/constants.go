package mongo

const (
	store        = "literacy"
	resultTable  = "test_results"
	profileTable = "user_profiles"
)

var indexData = []IndexData{
	newIndexData(resultTable, "user_id", false),
	newIndexData(resultTable, "created", false),
	newIndexData(profileTable, "user_id", true)}
