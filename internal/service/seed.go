// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"

	"github.com/soraprompt/gallery/internal/catalog"
	"github.com/soraprompt/gallery/internal/log"
	"github.com/soraprompt/gallery/internal/thumbnail"
)

// seedEntries are the built-in showcase entries used by the bulk reset.
var seedEntries = []catalog.Input{
	{
		Title:      "A stylish woman walks down a Tokyo street",
		Prompt:     "A stylish woman walks down a Tokyo street filled with warm glowing neon signs, cinematic medium shot, shallow depth of field, shot on 35mm film.",
		YoutubeURL: "https://www.youtube.com/watch?v=HK6y8DXBW04",
	},
	{
		Title:      "Beautiful octopus swimming in the deep ocean",
		Prompt:     "Beautiful octopus swimming in the deep ocean, bioluminescent, ethereal lighting, shot with IMAX cameras.",
		YoutubeURL: "https://www.youtube.com/watch?v=YQ1vN_91KO0",
	},
	{
		Title:      "A corgi rides a bicycle",
		Prompt:     "A corgi rides a bicycle through San Francisco, wearing a small helmet, joyful expression, cinematic drone shot following the dog.",
		YoutubeURL: "https://www.youtube.com/watch?v=6ZxHqKgZyVE",
	},
	{
		Title:      "Ancient Roman city comes to life",
		Prompt:     "Camera flies through a photorealistic ancient Roman city, showing daily life, markets, and architecture, golden hour lighting, highly detailed.",
		YoutubeURL: "https://www.youtube.com/watch?v=hQqC_FLp2C8",
	},
	{
		Title:      "Origami bird transforms into real bird",
		Prompt:     "A paper origami bird sitting on a wooden table magically transforms into a real bird and flies away, soft natural lighting through window.",
		YoutubeURL: "https://www.youtube.com/watch?v=qHMqGxXi1fA",
	},
}

// Seed replaces the entire collection with the built-in showcase
// entries in one store operation. It is a maintenance utility, not part
// of the public catalog contract.
func (s *Service) Seed(ctx context.Context) (int, error) {
	err := s.store.Update(ctx, func(c *catalog.Collection) error {
		videos := make([]catalog.Video, 0, len(seedEntries))
		now := s.now().UTC()
		for _, in := range seedEntries {
			id, err := catalog.ExtractVideoID(in.YoutubeURL)
			if err != nil {
				return fmt.Errorf("seed entry %q: %w", in.Title, err)
			}
			videos = append(videos, catalog.Video{
				ID:            id,
				Title:         in.Title,
				Prompt:        in.Prompt,
				YoutubeURL:    in.YoutubeURL,
				ThumbnailURL:  thumbnail.CanonicalURL(id),
				ThumbnailURLs: thumbnail.Candidates(id),
				CreatedAt:     now,
			})
		}
		c.Videos = videos
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Str(log.FieldEvent, "catalog.seeded").
		Int("videos", len(seedEntries)).
		Msg("collection reset to seed data")
	return len(seedEntries), nil
}
