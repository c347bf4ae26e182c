// Package gcs adapts the Google Cloud Storage API to a query engine's
// object-store access contract, letting the engine list and read remote
// objects as if they were local files.
//
// The package exposes three things: listing the objects under a logical
// "gcs://bucket/prefix" URI as a lazy stream of file metadata, ranged reads
// against a listed file, and a blocking read path for callers that cannot
// await asynchronous I/O. The blocking path dispatches each call to a
// dedicated worker with its own freshly dialed session and hands the result
// back over a one-shot channel with a timeout bound.
//
// The adapter is read-only. There are no write, delete, or rename operations,
// no caching of listings or data, and no retry policy beyond the single
// timeout bound on blocking reads.
//
// Example usage:
//
//	client, err := gcs.New(ctx)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	stream, err := client.ListFile(ctx, "gcs://my-bucket/warehouse/")
//	if err != nil {
//	    return err
//	}
//	files, err := stream.Collect()
//	if err != nil {
//	    return err
//	}
//
//	reader, err := client.FileReader(files[0].SizedFile)
//	if err != nil {
//	    return err
//	}
//	r, err := reader.SyncChunkReader(0, 4096)
package gcs
