// Package account logs in to the iSMART API and finds the vehicles bound to an account.
package account

import (
	"context"
	_ "embed" // Used to embed version for use with user agent
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/connector/inet"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

var (
	//go:embed version.txt
	libraryVersion string
)

// DefaultBaseURL is the European iSMART gateway.
const DefaultBaseURL = "https://gateway-mg-eu.soimt.com/api.app/v1"

const (
	loginEndpoint       = "oauth/token"
	vehicleListEndpoint = "vehicle/list"
)

func buildUserAgent(app string) string {
	library := strings.TrimSpace("ismart-sdk/" + libraryVersion)
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return library
	}
	path := strings.Split(build.Path, "/")
	if len(path) == 0 {
		return library
	}

	if app == "" {
		app = path[len(path)-1]
		var version string
		if build.Main.Version != "(devel)" && build.Main.Version != "" {
			version = build.Main.Version
		} else {
			for _, info := range build.Settings {
				if info.Key == "vcs.revision" {
					if len(info.Value) > 8 {
						version = info.Value[0:8]
					}
					break
				}
			}
		}

		if version != "" {
			app = fmt.Sprintf("%s/%s", app, version)
		}
	}

	return fmt.Sprintf("%s %s", app, library)
}

// Account allows interaction with an iSMART account.
type Account struct {
	// Username is the e-mail address used to log in.
	Username string
	// Subject is the account identifier issued by the API.
	Subject string
	// TokenExpiration is the time at which the access token stops being accepted.
	TokenExpiration time.Time

	client *inet.Client
}

// VehicleInfo describes a vehicle bound to the account.
type VehicleInfo struct {
	VIN        string `json:"vin"`
	ModelName  string `json:"modelName"`
	ModelYear  string `json:"modelYear"`
	IsActivate bool   `json:"isActivate"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserName    string `json:"user_name"`
	Account     string `json:"account"`
}

// Login authenticates with username and password against the API at baseURL.
//
// An empty baseURL selects DefaultBaseURL. Optional userAgent can be passed in - otherwise it will
// be generated from code.
func Login(ctx context.Context, baseURL, username, password, userAgent string) (*Account, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := inet.NewClient(baseURL, buildUserAgent(userAgent))
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
		"scope":      {"all"},
		"loginType":  {"2"},
	}
	log.Info("Logging in as %s", username)
	rsp, err := client.Do(ctx, http.MethodPost, loginEndpoint, form)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	var token tokenResponse
	if err := json.Unmarshal(rsp.Data, &token); err != nil {
		return nil, fmt.Errorf("login failed: %w: %s", protocol.ErrBadResponse, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("login failed: %w: missing access token", protocol.ErrBadResponse)
	}
	client.SetToken(token.AccessToken)

	acct := &Account{
		Username: username,
		Subject:  token.Account,
		client:   client,
	}
	if token.ExpiresIn > 0 {
		acct.TokenExpiration = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	acct.readClaims(token.AccessToken)
	return acct, nil
}

// We don't verify tokens; the API does that. Claims only refine what the login response reported.
func (a *Account) readClaims(accessToken string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		log.Debug("Access token is not a JWT: %s", err)
		return
	}
	if claims.ExpiresAt != nil {
		a.TokenExpiration = claims.ExpiresAt.Time
	}
	if claims.Subject != "" {
		a.Subject = claims.Subject
	}
}

// Client returns the HTTP session used by the account.
func (a *Account) Client() *inet.Client {
	return a.client
}

// VehicleList fetches the vehicles bound to the account.
func (a *Account) VehicleList(ctx context.Context) ([]VehicleInfo, error) {
	rsp, err := a.client.Do(ctx, http.MethodGet, vehicleListEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	var data struct {
		Vehicles []VehicleInfo `json:"vinList"`
	}
	if len(rsp.Data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(rsp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w: %s", protocol.ErrBadResponse, err)
	}
	return data.Vehicles, nil
}

// ResolveVehicle returns the VIN of the vehicle to control. An empty vin selects the first vehicle
// on the account.
func (a *Account) ResolveVehicle(ctx context.Context, vin string) (string, error) {
	vehicles, err := a.VehicleList(ctx)
	if err != nil {
		return "", err
	}
	if len(vehicles) == 0 {
		return "", protocol.ErrNoVehicleFound
	}
	if vin == "" {
		return vehicles[0].VIN, nil
	}
	for _, v := range vehicles {
		if strings.EqualFold(v.VIN, vin) {
			return v.VIN, nil
		}
	}
	return "", fmt.Errorf("%w: %s is not bound to %s", protocol.ErrNoVehicleFound, vin, a.Username)
}

// GetVehicle returns the Vehicle belonging to the account with the provided vin.
func (a *Account) GetVehicle(vin string) *vehicle.Vehicle {
	return vehicle.NewVehicle(inet.NewConnection(a.client, vin))
}
