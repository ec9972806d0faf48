// Package openai implements the ai interfaces using OpenAI-compatible APIs.
//
// It works with any service exposing the OpenAI REST surface, including local
// runtimes such as Ollama, LocalAI, and vLLM. The validator sends one chat
// completion per report group and parses the JSON array the model returns;
// the embedder uses the embeddings endpoint and enforces the configured
// vector dimensionality.
package openai
