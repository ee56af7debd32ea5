package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"wishlist/internal/domain"
	"wishlist/internal/service"
)

// userWithWishlists backs the nested user query.
type userWithWishlists struct {
	domain.User
	Wishlists []domain.Wishlist
}

// NewSchema builds the GraphQL schema over the use-case layer. Queries and
// mutations delegate to the same services the REST handlers call; errors
// propagate as GraphQL errors.
func NewSchema(wishlistService *service.WishlistService, userService *service.UserService) (graphql.Schema, error) {
	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "WishlistItem",
		Fields: graphql.Fields{
			"id":          stringField(func(i domain.WishlistItem) interface{} { return i.ID }),
			"wishlistId":  stringField(func(i domain.WishlistItem) interface{} { return i.WishlistID }),
			"productId":   stringField(func(i domain.WishlistItem) interface{} { return i.ProductID }),
			"productName": stringField(func(i domain.WishlistItem) interface{} { return i.ProductName }),
			"productUrl":  stringField(func(i domain.WishlistItem) interface{} { return i.ProductURL }),
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(domain.WishlistItem).Price.InexactFloat64(), nil
				},
			},
			"priority": stringField(func(i domain.WishlistItem) interface{} { return string(i.Priority) }),
			"notes":    stringField(func(i domain.WishlistItem) interface{} { return i.Notes }),
			"currency": stringField(func(i domain.WishlistItem) interface{} { return i.Currency }),
			"thumbnail": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(domain.WishlistItem).Thumbnail, nil
				},
			},
			"addedAt": stringField(func(i domain.WishlistItem) interface{} { return i.AddedAt.Format(time.RFC3339) }),
		},
	})

	wishlistType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Wishlist",
		Fields: graphql.Fields{
			"id":          wishlistString(func(w domain.Wishlist) interface{} { return w.ID }),
			"userId":      wishlistString(func(w domain.Wishlist) interface{} { return w.UserID }),
			"name":        wishlistString(func(w domain.Wishlist) interface{} { return w.Name }),
			"description": wishlistString(func(w domain.Wishlist) interface{} { return w.Description }),
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(domain.Wishlist).Items, nil
				},
			},
			"isDefault": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(domain.Wishlist).IsDefault, nil
				},
			},
			"createdAt": wishlistString(func(w domain.Wishlist) interface{} { return w.CreatedAt.Format(time.RFC3339) }),
			"updatedAt": wishlistString(func(w domain.Wishlist) interface{} { return w.UpdatedAt.Format(time.RFC3339) }),
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        userString(func(u userWithWishlists) interface{} { return u.ID }),
			"email":     userString(func(u userWithWishlists) interface{} { return u.Email }),
			"name":      userString(func(u userWithWishlists) interface{} { return u.Name }),
			"createdAt": userString(func(u userWithWishlists) interface{} { return u.CreatedAt.Format(time.RFC3339) }),
			"wishlists": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(wishlistType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(userWithWishlists).Wishlists, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"wishlists": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(wishlistType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return wishlistService.GetAllWishlists(p.Context)
				},
			},
			"wishlist": &graphql.Field{
				Type: wishlistType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wishlist, err := wishlistService.GetWishlistByID(p.Context, p.Args["id"].(string))
					if err != nil || wishlist == nil {
						return nil, err
					}
					return *wishlist, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					users, err := userService.GetUsers(p.Context)
					if err != nil {
						return nil, err
					}
					result := make([]userWithWishlists, len(users))
					for i, u := range users {
						wishlists, err := wishlistService.GetWishlistsByUser(p.Context, u.ID)
						if err != nil {
							return nil, err
						}
						result[i] = userWithWishlists{User: u, Wishlists: wishlists}
					}
					return result, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := userService.GetUserByID(p.Context, p.Args["id"].(string))
					if err != nil {
						if err == domain.ErrUserNotFound {
							return nil, nil
						}
						return nil, err
					}
					wishlists, err := wishlistService.GetWishlistsByUser(p.Context, user.ID)
					if err != nil {
						return nil, err
					}
					return userWithWishlists{User: *user, Wishlists: wishlists}, nil
				},
			},
			"userWishlists": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(wishlistType))),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return wishlistService.GetWishlistsByUser(p.Context, p.Args["userId"].(string))
				},
			},
		},
	})

	moveItemsResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MoveItemsResult",
		Fields: graphql.Fields{
			"source": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(service.MoveItemsResult).Source, nil
				},
			},
			"destination": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(service.MoveItemsResult).Destination, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createWishlist": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Args: graphql.FieldConfigArgument{
					"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"isDefault":   &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wishlist, err := wishlistService.CreateWishlist(p.Context, service.CreateWishlistInput{
						UserID:      p.Args["userId"].(string),
						Name:        p.Args["name"].(string),
						Description: p.Args["description"].(string),
						IsDefault:   p.Args["isDefault"].(bool),
					})
					if err != nil {
						return nil, err
					}
					return *wishlist, nil
				},
			},
			"addItemToWishlist": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Args: graphql.FieldConfigArgument{
					"wishlistId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"productId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"productName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"productUrl":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"priority":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"notes":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"currency":    &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"thumbnail":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wishlist, err := wishlistService.AddItem(p.Context, p.Args["wishlistId"].(string), service.AddItemInput{
						ProductID:   p.Args["productId"].(string),
						ProductName: p.Args["productName"].(string),
						ProductURL:  p.Args["productUrl"].(string),
						Price:       decimal.NewFromFloat(p.Args["price"].(float64)),
						Priority:    p.Args["priority"].(string),
						Notes:       p.Args["notes"].(string),
						Currency:    p.Args["currency"].(string),
						Thumbnail:   p.Args["thumbnail"].(string),
					})
					if err != nil {
						return nil, err
					}
					return *wishlist, nil
				},
			},
			"removeItemFromWishlist": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Args: graphql.FieldConfigArgument{
					"wishlistId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"itemId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wishlist, err := wishlistService.RemoveItem(p.Context, p.Args["wishlistId"].(string), p.Args["itemId"].(string))
					if err != nil {
						return nil, err
					}
					return *wishlist, nil
				},
			},
			"setDefaultWishlist": &graphql.Field{
				Type: graphql.NewNonNull(wishlistType),
				Args: graphql.FieldConfigArgument{
					"wishlistId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					wishlist, err := wishlistService.SetDefaultWishlist(p.Context, p.Args["wishlistId"].(string))
					if err != nil {
						return nil, err
					}
					return *wishlist, nil
				},
			},
			"moveItems": &graphql.Field{
				Type: graphql.NewNonNull(moveItemsResultType),
				Args: graphql.FieldConfigArgument{
					"sourceListId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"destinationListId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"itemIds":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rawIDs := p.Args["itemIds"].([]interface{})
					itemIDs := make([]string, len(rawIDs))
					for i, id := range rawIDs {
						itemIDs[i] = id.(string)
					}
					result, err := wishlistService.MoveItems(p.Context, p.Args["sourceListId"].(string), p.Args["destinationListId"].(string), itemIDs)
					if err != nil {
						return nil, err
					}
					return *result, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func stringField(get func(domain.WishlistItem) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.String),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return get(p.Source.(domain.WishlistItem)), nil
		},
	}
}

func wishlistString(get func(domain.Wishlist) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.String),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return get(p.Source.(domain.Wishlist)), nil
		},
	}
}

func userString(get func(userWithWishlists) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.String),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return get(p.Source.(userWithWishlists)), nil
		},
	}
}
