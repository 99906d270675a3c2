// Package s3 implements blob.Store against AWS S3 using the v2 SDK.
package s3
