package catalog

// SampleRecords returns the starter records written when the service
// finds no store file on disk.
func SampleRecords() []Record {
	return []Record{
		{ID: 1, Name: "The Shawshank Redemption", Year: "1994", Director: "Frank Darabont", Category: "Drama"},
		{ID: 2, Name: "The Godfather", Year: "1972", Director: "Francis Ford Coppola", Category: "Crime"},
		{ID: 3, Name: "Pulp Fiction", Year: "1994", Director: "Quentin Tarantino", Category: "Crime"},
	}
}
