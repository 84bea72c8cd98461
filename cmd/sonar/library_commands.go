package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/sonar/pkg/subsonic"
)

func newFoldersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List music folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				folders, err := client.GetMusicFolders(c)
				if err != nil {
					return fmt.Errorf("get music folders: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, folders)
				}
				rows := make([][]string, 0, len(folders))
				for _, f := range folders {
					rows = append(rows, []string{strconv.FormatInt(f.ID, 10), dash(f.Name)})
				}
				printTable(cmd, []string{"ID", "Name"}, rows, []columnAlignment{alignRight, alignLeft}, "No music folders.")
				return nil
			})
		},
	}
}

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List artists by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				index, err := client.GetArtists(c, strings.TrimSpace(folder))
				if err != nil {
					return fmt.Errorf("get artists: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, index)
				}
				artists := index.All()
				rows := make([][]string, 0, len(artists))
				for _, a := range artists {
					rows = append(rows, []string{a.ID, a.Name, formatCount(a.AlbumCount)})
				}
				printTable(cmd, []string{"ID", "Artist", "Albums"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}, "No artists.")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Restrict to a music folder ID")
	return cmd
}

func newAlbumsCommand(ctx *commandContext) *cobra.Command {
	var (
		listType string
		size     int
		offset   int
		fromYear int
		toYear   int
		genre    string
	)

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List albums in a server-defined order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := subsonic.ParseAlbumListType(listType)
			if err != nil {
				return err
			}
			opts := subsonic.AlbumListOptions{Size: size, Offset: offset, Genre: strings.TrimSpace(genre)}
			if cmd.Flags().Changed("from-year") {
				opts.FromYear = &fromYear
			}
			if cmd.Flags().Changed("to-year") {
				opts.ToYear = &toYear
			}
			switch {
			case kind == subsonic.AlbumListByYear && (opts.FromYear == nil || opts.ToYear == nil):
				return fmt.Errorf("--type byYear requires --from-year and --to-year")
			case kind == subsonic.AlbumListByGenre && opts.Genre == "":
				return fmt.Errorf("--type byGenre requires --genre")
			}

			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				albums, err := client.GetAlbumList2(c, kind, opts)
				if err != nil {
					return fmt.Errorf("get album list: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, albums)
				}
				printAlbums(cmd, albums)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&listType, "type", "t", string(subsonic.AlbumListNewest), "Ordering: "+albumListTypeNames())
	cmd.Flags().IntVarP(&size, "size", "n", 20, "Number of albums to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of albums to skip")
	cmd.Flags().IntVar(&fromYear, "from-year", 0, "First year for --type byYear")
	cmd.Flags().IntVar(&toYear, "to-year", 0, "Last year for --type byYear")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre for --type byGenre")
	return cmd
}

func albumListTypeNames() string {
	names := make([]string, len(subsonic.AlbumListTypes))
	for i, t := range subsonic.AlbumListTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func printAlbums(cmd *cobra.Command, albums []subsonic.AlbumID3) {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		artist := a.DisplayArtist
		if artist == "" {
			artist = a.Artist
		}
		year := "-"
		if a.Year > 0 {
			year = strconv.Itoa(a.Year)
		}
		rows = append(rows, []string{a.ID, a.Name, dash(artist), year, formatCount(a.SongCount), formatSeconds(a.Duration)})
	}
	printTable(cmd,
		[]string{"ID", "Album", "Artist", "Year", "Songs", "Length"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
		"No albums.")
}

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "album <id>",
		Short: "Show an album and its tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				album, err := client.GetAlbum(c, args[0])
				if err != nil {
					return fmt.Errorf("get album: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, album)
				}

				out := cmd.OutOrStdout()
				artist := album.DisplayArtist
				if artist == "" {
					artist = album.Artist
				}
				heading := album.Name
				if artist != "" {
					heading += " by " + artist
				}
				if album.Year > 0 {
					heading += fmt.Sprintf(" (%d)", album.Year)
				}
				fmt.Fprintln(out, heading)
				printSongs(cmd, album.Songs, false)
				return nil
			})
		},
	}
}

// printSongs renders tracks. withAlbum adds album and artist columns for
// mixed result sets.
func printSongs(cmd *cobra.Command, songs []subsonic.Child, withAlbum bool) {
	rows := make([][]string, 0, len(songs))
	for _, s := range songs {
		track := "-"
		if s.Track > 0 {
			track = strconv.Itoa(s.Track)
			if s.DiscNumber > 1 {
				track = fmt.Sprintf("%d-%d", s.DiscNumber, s.Track)
			}
		}
		row := []string{s.ID, track, s.Title}
		if withAlbum {
			row = append(row, dash(s.Artist), dash(s.Album))
		}
		rows = append(rows, append(row, formatSeconds(s.Duration)))
	}

	headers := []string{"ID", "#", "Title"}
	aligns := []columnAlignment{alignLeft, alignRight, alignLeft}
	if withAlbum {
		headers = append(headers, "Artist", "Album")
		aligns = append(aligns, alignLeft, alignLeft)
	}
	headers = append(headers, "Length")
	aligns = append(aligns, alignRight)
	printTable(cmd, headers, rows, aligns, "No songs.")
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var artistCount, albumCount, songCount int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search artists, albums, and songs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			opts := subsonic.SearchOptions{
				ArtistCount: &artistCount,
				AlbumCount:  &albumCount,
				SongCount:   &songCount,
			}
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				result, err := client.Search3(c, query, opts)
				if err != nil {
					return fmt.Errorf("search: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				if len(result.Artists)+len(result.Albums)+len(result.Songs) == 0 {
					fmt.Fprintf(out, "No matches for %q.\n", query)
					return nil
				}
				if len(result.Artists) > 0 {
					fmt.Fprintf(out, "Artists (%d)\n", len(result.Artists))
					rows := make([][]string, 0, len(result.Artists))
					for _, a := range result.Artists {
						rows = append(rows, []string{a.ID, a.Name, formatCount(a.AlbumCount)})
					}
					printTable(cmd, []string{"ID", "Artist", "Albums"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}, "")
				}
				if len(result.Albums) > 0 {
					fmt.Fprintf(out, "Albums (%d)\n", len(result.Albums))
					printAlbums(cmd, result.Albums)
				}
				if len(result.Songs) > 0 {
					fmt.Fprintf(out, "Songs (%d)\n", len(result.Songs))
					printSongs(cmd, result.Songs, true)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&artistCount, "artists", 10, "Maximum artists to return (0 skips artists)")
	cmd.Flags().IntVar(&albumCount, "albums", 10, "Maximum albums to return (0 skips albums)")
	cmd.Flags().IntVar(&songCount, "songs", 20, "Maximum songs to return (0 skips songs)")
	return cmd
}

func newNowPlayingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "now-playing",
		Short: "Show what users are playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				entries, err := client.GetNowPlaying(c)
				if err != nil {
					return fmt.Errorf("get now playing: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, entries)
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						dash(e.Username),
						dash(e.PlayerName),
						e.Title,
						dash(e.Artist),
						dash(e.Album),
						fmt.Sprintf("%dm", e.MinutesAgo),
					})
				}
				printTable(cmd,
					[]string{"User", "Player", "Title", "Artist", "Album", "Started"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
					"Nothing is playing.")
				return nil
			})
		},
	}
}
