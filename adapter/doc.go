// Package adapter declares the persistence contracts that concrete database
// and blob storage adapters implement. Nothing here performs I/O; adapters
// live in the libraries that consume this package.
//
// A Database is typed by its record:
//
//	var db adapter.Database[Order] = postgres.NewOrders(pool)
//	order, err := db.Get(ctx, id)
//	if errors.Is(err, adapter.ErrNotFound) {
//		...
//	}
//
// Transaction hands the function a transactional handle. Adapters roll back
// every write made through the handle when the function returns an error:
//
//	total, err := adapter.InTransaction(ctx, db, func(ctx context.Context, tx adapter.Database[Order]) (int, error) {
//		...
//	})
//
// Validated wraps a Database so that records are checked against a
// schema.Schema before they reach the adapter.
package adapter
