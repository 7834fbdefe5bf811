package elloapi

// Availability checks whether a username/email is available - Content is sent as-is
type Availability struct {
	Content map[string]string
}

func (e Availability) Tag() Tag             { return TagAvailability }
func (e Availability) pathVars() pathParams { return nil }
func (e Availability) parameters() Params   { return paramsFromMap(e.Content) }

type CurrentUserProfile struct{}

func (e CurrentUserProfile) Tag() Tag             { return TagCurrentUserProfile }
func (e CurrentUserProfile) pathVars() pathParams { return nil }
func (e CurrentUserProfile) parameters() Params   { return nil }

// CurrentUserStream reads the current user's profile with their recent posts
type CurrentUserStream struct{}

func (e CurrentUserStream) Tag() Tag             { return TagCurrentUserStream }
func (e CurrentUserStream) pathVars() pathParams { return nil }
func (e CurrentUserStream) parameters() Params {
	return Params{{Name: "post_count", Value: defaultPostCount}}
}

type ProfileUpdate struct {
	Body Body
}

func (e ProfileUpdate) Tag() Tag             { return TagProfileUpdate }
func (e ProfileUpdate) pathVars() pathParams { return nil }
func (e ProfileUpdate) parameters() Params   { return e.Body.params() }

type ProfileDelete struct{}

func (e ProfileDelete) Tag() Tag             { return TagProfileDelete }
func (e ProfileDelete) pathVars() pathParams { return nil }
func (e ProfileDelete) parameters() Params   { return nil }

type ProfileToggles struct{}

func (e ProfileToggles) Tag() Tag             { return TagProfileToggles }
func (e ProfileToggles) pathVars() pathParams { return nil }
func (e ProfileToggles) parameters() Params   { return nil }

// FindFriends matches address book contacts (name -> emails) against users
type FindFriends struct {
	Contacts map[string][]string
}

func (e FindFriends) Tag() Tag             { return TagFindFriends }
func (e FindFriends) pathVars() pathParams { return nil }
func (e FindFriends) parameters() Params {
	return Params{{Name: "contacts", Value: e.Contacts}}
}

// InviteFriends sends an invitation to an email address
type InviteFriends struct {
	Contact string
}

func (e InviteFriends) Tag() Tag             { return TagInviteFriends }
func (e InviteFriends) pathVars() pathParams { return nil }
func (e InviteFriends) parameters() Params {
	return Params{{Name: "email", Value: e.Contact}}
}

// Join signs up a new user - an empty InvitationCode is not sent
type Join struct {
	Email          string
	Username       string
	Password       string
	InvitationCode string
}

func (e Join) Tag() Tag             { return TagJoin }
func (e Join) pathVars() pathParams { return nil }
func (e Join) parameters() Params {
	result := Params{
		{Name: "email", Value: e.Email},
		{Name: "username", Value: e.Username},
		{Name: "password", Value: e.Password},
	}
	result.SetIf("invitation_code", e.InvitationCode)
	return result
}

// Relationship sets the relationship (e.g. "friend", "noise", "inactive") to a user
type Relationship struct {
	UserID       string
	Relationship string
}

func (e Relationship) Tag() Tag             { return TagRelationship }
func (e Relationship) pathVars() pathParams { return pathVars(e.UserID, e.Relationship) }
func (e Relationship) parameters() Params   { return nil }

// RelationshipBatch sets the same relationship to several users
type RelationshipBatch struct {
	UserIDs      []string
	Relationship string
}

func (e RelationshipBatch) Tag() Tag             { return TagRelationshipBatch }
func (e RelationshipBatch) pathVars() pathParams { return nil }
func (e RelationshipBatch) parameters() Params {
	ids := make([]string, len(e.UserIDs))
	copy(ids, e.UserIDs)
	return Params{
		{Name: "user_ids", Value: ids},
		{Name: "priority", Value: e.Relationship},
	}
}

type SearchForUsers struct {
	Terms string
}

func (e SearchForUsers) Tag() Tag             { return TagSearchForUsers }
func (e SearchForUsers) pathVars() pathParams { return nil }
func (e SearchForUsers) parameters() Params {
	return Params{{Name: "terms", Value: e.Terms}, {Name: perPageParam, Value: defaultPerPage}}
}

type UserNameAutoComplete struct {
	Terms string
}

func (e UserNameAutoComplete) Tag() Tag             { return TagUserNameAutoComplete }
func (e UserNameAutoComplete) pathVars() pathParams { return nil }
func (e UserNameAutoComplete) parameters() Params {
	return Params{{Name: "terms", Value: e.Terms}}
}

// UserStream reads a user's profile with their recent posts - UserParam is a user id or a "~username"
type UserStream struct {
	UserParam string
}

func (e UserStream) Tag() Tag             { return TagUserStream }
func (e UserStream) pathVars() pathParams { return pathVars(e.UserParam) }
func (e UserStream) parameters() Params {
	return Params{{Name: "post_count", Value: defaultPostCount}}
}

type UserStreamFollowers struct {
	UserID string
}

func (e UserStreamFollowers) Tag() Tag             { return TagUserStreamFollowers }
func (e UserStreamFollowers) pathVars() pathParams { return pathVars(e.UserID) }
func (e UserStreamFollowers) parameters() Params   { return perPage(defaultPerPage) }

type UserStreamFollowing struct {
	UserID string
}

func (e UserStreamFollowing) Tag() Tag             { return TagUserStreamFollowing }
func (e UserStreamFollowing) pathVars() pathParams { return pathVars(e.UserID) }
func (e UserStreamFollowing) parameters() Params   { return perPage(defaultPerPage) }
