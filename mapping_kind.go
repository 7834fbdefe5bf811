package elloapi

// MappingKind identifies the semantic shape of a successful response body
//
// the zero value is not a valid kind
type MappingKind int

const (
	ActivitiesType         MappingKind = iota + 1 // a collection of stream activities
	AmazonCredentialsType                         // asset upload credentials
	AutoCompleteResultType                        // autocomplete suggestions
	AvailabilityType                              // username/email availability result
	CommentsType                                  // a collection of comments
	DynamicSettingsType                           // profile toggles
	ErrorType                                     // an error envelope (or an otherwise unmapped body)
	LovesType                                     // a collection of loves
	NoContentType                                 // no body expected
	PostCategoriesType                            // a collection of post categories
	PostsType                                     // a collection of posts
	RelationshipsType                             // a collection of relationships
	UsersType                                     // a collection of users
)

var mappingKindNames = map[MappingKind]string{
	ActivitiesType:         "ActivitiesType",
	AmazonCredentialsType:  "AmazonCredentialsType",
	AutoCompleteResultType: "AutoCompleteResultType",
	AvailabilityType:       "AvailabilityType",
	CommentsType:           "CommentsType",
	DynamicSettingsType:    "DynamicSettingsType",
	ErrorType:              "ErrorType",
	LovesType:              "LovesType",
	NoContentType:          "NoContentType",
	PostCategoriesType:     "PostCategoriesType",
	PostsType:              "PostsType",
	RelationshipsType:      "RelationshipsType",
	UsersType:              "UsersType",
}

func (k MappingKind) String() string {
	if s, ok := mappingKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// IsValid reports whether the kind is one of the declared kinds
func (k MappingKind) IsValid() bool {
	_, ok := mappingKindNames[k]
	return ok
}
