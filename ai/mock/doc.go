// Package mock provides test doubles for the ai package interfaces.
//
// The mocks default to deterministic behavior so tests are repeatable without
// any external service: the embedder derives vectors from a hash of the input
// text, and the validator echoes back every input as legitimate and unbiased.
// Custom behavior is injected through public function fields.
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("service down")
//	}
package mock
