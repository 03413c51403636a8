// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/catalogrec/internal/catalog"
)

// commandFunc runs one command against the opened service.
type commandFunc func(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogrec",
		Short: "Product catalog and recommendation store",
		Long: `catalogrec keeps products, users and reviews in JSON documents and
answers content-based recommendation queries. Every command prints one JSON
document on stdout.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context()); err != nil {
				a.err = err
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(nil, usageError(fmt.Errorf("no command provided")))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	recommendCmd := leaf(a, "recommend <user_id> [k]", "Recommend up to k products for a user", 1, recommendFor)
	recommendCmd.Args = cobra.RangeArgs(1, 2)

	root.AddCommand(
		newGetCommand(a),
		leaf(a, "add-user <name>", "Add a user", 1, addUser),
		leaf(a, "add-product <name> <category> <price>", "Add a product", 3, addProduct),
		leaf(a, "add-review <user_id> <product_id> <rating> <comment>", "Add a review", 4, addReview),
		leaf(a, "delete-user <user_id>", "Delete a user and the user's reviews", 1, deleteUser),
		leaf(a, "delete-product <product_id>", "Delete a product and its reviews", 1, deleteProduct),
		recommendCmd,
		leaf(a, "purchase <user_id> <product_id>", "Check a purchase (not stored)", 2, purchase),
		leaf(a, "rate <user_id> <product_id> <rating>", "Rate a product without a comment", 3, rate),
		leaf(a, "add <user|product|review> <json>", "Add a record from a JSON object", 2, addJSON),
	)
	return root
}

// leaf builds a command with exactly nargs positional arguments. Flag
// parsing is off so values such as "-5" or "--great--" reach the command.
func leaf(a *app, use, short string, nargs int, fn commandFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               cobra.ExactArgs(nargs),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.finish(fn(cmd.Context(), a.svc, args))
		},
	}
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "get <products|users|reviews> [product_id]",
		Short:              "List products, users or the reviews of a product",
		Args:               cobra.RangeArgs(1, 2),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case args[0] == "products" && len(args) == 1:
				return a.finish(a.svc.ListProducts(ctx))
			case args[0] == "users" && len(args) == 1:
				return a.finish(a.svc.ListUsers(ctx))
			case args[0] == "reviews" && len(args) == 2:
				id, err := catalog.ParseInt("product_id", args[1])
				if err != nil {
					return a.finish(nil, err)
				}
				return a.finish(a.svc.ListReviews(ctx, id))
			default:
				return a.finish(nil, usageError(fmt.Errorf("cannot get %v", args)))
			}
		},
	}
}

func addUser(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	return svc.AddUser(ctx, catalog.AddUserRequest{Name: args[0]})
}

func addProduct(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	price, err := catalog.ParsePrice(args[2])
	if err != nil {
		return nil, err
	}
	return svc.AddProduct(ctx, catalog.AddProductRequest{Name: args[0], Category: args[1], Price: price})
}

func addReview(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	ids, err := parseInts(args[:3], "user_id", "product_id", "rating")
	if err != nil {
		return nil, err
	}
	return svc.AddReview(ctx, catalog.AddReviewRequest{
		UserID:    ids[0],
		ProductID: ids[1],
		Rating:    ids[2],
		Comment:   args[3],
	})
}

func deleteUser(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	id, err := catalog.ParseInt("user_id", args[0])
	if err != nil {
		return nil, err
	}
	return svc.DeleteUser(ctx, id)
}

func deleteProduct(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	id, err := catalog.ParseInt("product_id", args[0])
	if err != nil {
		return nil, err
	}
	return svc.DeleteProduct(ctx, id)
}

func recommendFor(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	id, err := catalog.ParseInt("user_id", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return svc.Recommend(ctx, id)
	}
	k, err := catalog.ParseInt("k", args[1])
	if err != nil {
		return nil, err
	}
	return svc.RecommendTop(ctx, id, k)
}

func purchase(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	ids, err := parseInts(args, "user_id", "product_id")
	if err != nil {
		return nil, err
	}
	return svc.Purchase(ctx, ids[0], ids[1])
}

func rate(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	ids, err := parseInts(args, "user_id", "product_id", "rating")
	if err != nil {
		return nil, err
	}
	return svc.Rate(ctx, ids[0], ids[1], ids[2])
}

func addJSON(ctx context.Context, svc *catalog.Service, args []string) (interface{}, error) {
	return svc.AddFromJSON(ctx, args[0], args[1])
}

// parseInts parses args[i] as the integer argument names[i].
func parseInts(args []string, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := catalog.ParseInt(name, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
