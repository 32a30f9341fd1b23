// Package zesty provides types, interfaces, and helpers for working with the
// Zesty.io content platform APIs.
//
// # Overview
//
// The zesty package defines the resource types (Model, Field, Item, Setting,
// AuditLog, Bin, Group, File, Instance) and the interfaces of the
// resource-oriented clients (ModelsClient, ItemsClient, MediaClient, ...).
// A concrete implementation is provided by the sdk package, which validates
// configuration, verifies the session token and wires the transport. Most
// consumers import sdk to construct a client and then use the interfaces
// declared here.
//
// # Getting a client
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
//	  cli, err := sdk.New(ctx, &zesty.Config{InstanceZUID: "8-abc", Token: token})
//	  if err != nil { log.Fatal(err) }
//
//	  models, err := cli.Instance().Models().GetModels(ctx)
//	  if err != nil { log.Fatal(err) }
//	  if models.StatusCode != 200 { log.Fatal(models.Message) }
//	}
//
// # Responses
//
// Every call that reaches the platform returns a result, whatever the HTTP
// status. The status is recorded in Result.StatusCode (and Envelope.StatusCode)
// and callers decide what counts as failure. Only argument errors (raised
// before any request is sent) and transport errors (the request could not
// complete) are returned as Go errors.
//
// The Envelope type keeps the raw top-level fields of the upstream JSON body;
// its JSON form is the upstream object merged with a "statusCode" key.
//
// # Errors
//
// Missing identifiers produce an *ArgumentError naming the parameter and the
// operation; errors.Is(err, ErrMissingArgument) matches them. StatusError is
// used by higher-level helpers that compare a status against an expected
// success code.
package zesty
