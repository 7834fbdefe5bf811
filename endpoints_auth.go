package elloapi

import (
	"encoding/hex"
)

// ClientCredentials identify the API client to the token endpoint
type ClientCredentials struct {
	ID     string
	Secret string
}

func (c ClientCredentials) params(grantType string) Params {
	return Params{
		{Name: "client_id", Value: c.ID},
		{Name: "client_secret", Value: c.Secret},
		{Name: "grant_type", Value: grantType},
	}
}

// AnonymousCredentials requests a client-credentials (anonymous) access token
type AnonymousCredentials struct {
	Client ClientCredentials
}

func (e AnonymousCredentials) Tag() Tag             { return TagAnonymousCredentials }
func (e AnonymousCredentials) pathVars() pathParams { return nil }
func (e AnonymousCredentials) parameters() Params {
	return e.Client.params("client_credentials")
}

// Auth requests an access token for a user
type Auth struct {
	Client   ClientCredentials
	Email    string
	Password string
}

func (e Auth) Tag() Tag             { return TagAuth }
func (e Auth) pathVars() pathParams { return nil }
func (e Auth) parameters() Params {
	result := e.Client.params("password")
	result.Set("email", e.Email)
	result.Set("password", e.Password)
	return result
}

// ReAuth exchanges a refresh token for a new access token
type ReAuth struct {
	Client ClientCredentials
	Token  string
}

func (e ReAuth) Tag() Tag             { return TagReAuth }
func (e ReAuth) pathVars() pathParams { return nil }
func (e ReAuth) parameters() Params {
	result := e.Client.params("refresh_token")
	result.Set("refresh_token", e.Token)
	return result
}

type AmazonCredentials struct{}

func (e AmazonCredentials) Tag() Tag             { return TagAmazonCredentials }
func (e AmazonCredentials) pathVars() pathParams { return nil }
func (e AmazonCredentials) parameters() Params   { return nil }

// AppInfo identifies the app build registering for push notifications
type AppInfo struct {
	BundleIdentifier string
	ShortVersion     string
	Version          string
}

func (a AppInfo) params() Params {
	var result Params
	result.SetIf("bundle_identifier", a.BundleIdentifier)
	result.SetIf("bundle_short_version_number", a.ShortVersion)
	result.SetIf("bundle_version", a.Version)
	return result
}

// PushSubscriptions registers an APNs device token
type PushSubscriptions struct {
	Token []byte
	App   AppInfo
}

func (e PushSubscriptions) Tag() Tag { return TagPushSubscriptions }
func (e PushSubscriptions) pathVars() pathParams {
	return pathVars(hex.EncodeToString(e.Token))
}
func (e PushSubscriptions) parameters() Params { return e.App.params() }

// DeleteSubscriptions unregisters an APNs device token
type DeleteSubscriptions struct {
	Token []byte
	App   AppInfo
}

func (e DeleteSubscriptions) Tag() Tag { return TagDeleteSubscriptions }
func (e DeleteSubscriptions) pathVars() pathParams {
	return pathVars(hex.EncodeToString(e.Token))
}
func (e DeleteSubscriptions) parameters() Params { return e.App.params() }
