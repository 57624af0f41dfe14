package s3

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// APIMock is a mock implementation of API.
type APIMock struct {
	GetObjectFunc    func(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObjectFunc    func(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjectFunc func(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadBucketFunc   func(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)

	mu          sync.Mutex
	putCalls    []*s3.PutObjectInput
	getCalls    []*s3.GetObjectInput
	deleteCalls []*s3.DeleteObjectInput
}

func (m *APIMock) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc == nil {
		panic("APIMock.GetObjectFunc: method is nil but API.GetObject was just called")
	}
	m.mu.Lock()
	m.getCalls = append(m.getCalls, in)
	m.mu.Unlock()
	return m.GetObjectFunc(ctx, in, optFns...)
}

func (m *APIMock) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc == nil {
		panic("APIMock.PutObjectFunc: method is nil but API.PutObject was just called")
	}
	m.mu.Lock()
	m.putCalls = append(m.putCalls, in)
	m.mu.Unlock()
	return m.PutObjectFunc(ctx, in, optFns...)
}

func (m *APIMock) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.DeleteObjectFunc == nil {
		panic("APIMock.DeleteObjectFunc: method is nil but API.DeleteObject was just called")
	}
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, in)
	m.mu.Unlock()
	return m.DeleteObjectFunc(ctx, in, optFns...)
}

func (m *APIMock) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if m.HeadBucketFunc == nil {
		panic("APIMock.HeadBucketFunc: method is nil but API.HeadBucket was just called")
	}
	return m.HeadBucketFunc(ctx, in, optFns...)
}

func (m *APIMock) PutObjectCalls() []*s3.PutObjectInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCalls
}

func (m *APIMock) GetObjectCalls() []*s3.GetObjectInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getCalls
}

func (m *APIMock) DeleteObjectCalls() []*s3.DeleteObjectInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}
