// Package sdk provides the primary entry point for constructing a Zesty.io
// client that implements the zesty.Client interface.
//
// It validates configuration, builds every resource client over one HTTP
// transport and verifies the session token before handing the client back.
// Most applications should import sdk to build a client, then use the
// returned value to reach the resource clients: Account(), Instance(),
// Media() and Actions().
//
// # Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/zesty-client/pkg/sdk"
//	  "github.com/fivetwenty-io/zesty-client/pkg/zesty"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With the default platform URLs:
//	  cli, err := sdk.NewWithToken(ctx, "8-aaeffee09b-7w6v22", token)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with overrides, e.g. a staging stack:
//	  cli, err = sdk.New(ctx, &zesty.Config{
//	    InstanceZUID:   "8-aaeffee09b-7w6v22",
//	    Token:          token,
//	    AccountsAPIURL: "https://accounts.api.dev.zesty.io/v1",
//	    CookieName:     "DEV_APP_SID",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  items, err := cli.Instance().Items().GetItems(ctx, "6-556370-8gp8bs")
//	  if err != nil { log.Fatal(err) }
//	  _ = items
//	}
//
// # Token verification
//
// New fails unless the auth service answers the verification call with
// status 200. A rejected token is reported as zesty.ErrTokenVerification
// wrapping a *zesty.StatusError, so zesty.IsUnauthorized(err) tells an
// expired session apart from a network failure.
package sdk
