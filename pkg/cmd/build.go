package cmd

import (
	"context"

	"breathbathNewsIntel/pkg/claude"
	"breathbathNewsIntel/pkg/github"
	"breathbathNewsIntel/pkg/news"
	"breathbathNewsIntel/pkg/pipeline"
	"breathbathNewsIntel/pkg/querycache"
	"breathbathNewsIntel/pkg/storage"
	"breathbathNewsIntel/pkg/translate"
)

func buildCachePolicy(ctx context.Context) (*querycache.Policy, error) {
	db, err := storage.BuildClient()
	if err != nil {
		return nil, err
	}

	store := querycache.NewStore(db)
	cacheFile := store.Load(ctx)

	return querycache.NewPolicy(store, cacheFile), nil
}

func BuildPipeline(ctx context.Context) (*pipeline.Pipeline, error) {
	policy, err := buildCachePolicy(ctx)
	if err != nil {
		return nil, err
	}

	claudeCfg, err := claude.LoadConfig()
	if err != nil {
		return nil, err
	}

	completer, err := claude.NewClient(claudeCfg)
	if err != nil {
		return nil, err
	}

	translator := translate.NewTranslator(completer, policy)

	newsCfg, err := news.LoadConfig()
	if err != nil {
		return nil, err
	}

	searcher, err := news.NewClient(newsCfg)
	if err != nil {
		return nil, err
	}

	githubCfg, err := github.LoadConfig()
	if err != nil {
		return nil, err
	}

	notifier, err := github.NewNotifier(githubCfg)
	if err != nil {
		return nil, err
	}

	pipelineCfg, err := pipeline.LoadConfig()
	if err != nil {
		return nil, err
	}

	return pipeline.New(pipelineCfg, translator, searcher, completer, notifier)
}
