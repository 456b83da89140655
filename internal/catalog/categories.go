package catalog

// Static category definitions. The registration order here is the stable
// order exposed by All() and used verbatim in classifier instructions.

// Column sets shared across categories.
var (
	characterColumns = []Column{
		{Name: "character", Header: "Name", Kind: KindString, Description: "Name of the character"},
		{Name: "actor", Header: "Actor", Kind: KindString, Description: "Actor who plays the character"},
		{Name: "relationship", Header: "Relationship", Kind: KindString, Description: "Relationship to other main characters"},
		{Name: "year_joined", Header: "Year Joined", Kind: KindInt, Format: FormatYear, Description: "Year the character joined the series"},
		{Name: "description", Header: "Description", Kind: KindString, Description: "Short description of the character"},
	}
	broadcastColumns = []Column{
		{Name: "network", Header: "Network", Kind: KindString, Description: "Broadcasting network or platform"},
		{Name: "country", Header: "Country", Kind: KindString, Description: "Country of broadcast"},
		{Name: "start_year", Header: "Start Year", Kind: KindInt, Format: FormatYear, Description: "First year of broadcast"},
		{Name: "end_year", Header: "End Year", Kind: KindInt, Format: FormatYear, Description: "Last year of broadcast, 9999 if ongoing"},
	}
	companyColumns = []Column{
		{Name: "name", Header: "Name", Kind: KindString, Description: "Name of the production company"},
		{Name: "founded_year", Header: "Founded", Kind: KindInt, Format: FormatYear, Description: "Year the company was founded"},
		{Name: "start_year", Header: "Start", Kind: KindInt, Format: FormatYear, Description: "Year the company joined the production"},
		{Name: "end_year", Header: "End", Kind: KindInt, Format: FormatYear, Description: "Year the company left the production"},
		{Name: "country", Header: "Country", Kind: KindString, Description: "Country where the company is based"},
	}
	castColumns = []Column{
		{Name: "character", Header: "Character", Kind: KindString, Description: "Name of character in the movie"},
		{Name: "actor", Header: "Actor", Kind: KindString, Description: "Actor who played the character"},
		{Name: "role", Header: "Role", Kind: KindString, Description: "Role type (lead/supporting/guest)"},
	}
	arcColumns = []Column{
		{Name: "character", Header: "Character", Kind: KindString, Description: "Character name"},
		{Name: "starting_state", Header: "Start", Kind: KindString, Description: "Where the character begins emotionally"},
		{Name: "ending_state", Header: "End", Kind: KindString, Description: "Where the character lands by the finale"},
		{Name: "turning_point", Header: "Turning Point", Kind: KindString, Description: "Moment that pivots the arc"},
	}
	studioColumns = []Column{
		{Name: "name", Header: "Studio", Kind: KindString, Description: "Studio name"},
		{Name: "role", Header: "Role", Kind: KindString, Description: "Role on the project (lead developer, co-development, publisher)"},
		{Name: "headquarters", Header: "HQ", Kind: KindString, Description: "Primary headquarters or region"},
		{Name: "team_size", Header: "Team", Kind: KindInt, Format: FormatNumber, Description: "Approximate team size on this project"},
	}
	platformColumns = []Column{
		{Name: "platform", Header: "Platform", Kind: KindString, Description: "Platform name (console, PC storefront, cloud)"},
		{Name: "release_date", Header: "Release", Kind: KindString, Description: "Release date or window"},
		{Name: "edition", Header: "Edition", Kind: KindString, Description: "Edition or SKU identifier"},
	}
	mechanicColumns = []Column{
		{Name: "mechanic", Header: "Mechanic", Kind: KindString, Description: "Mechanic or system name"},
		{Name: "category", Header: "Category", Kind: KindString, Description: "Category (combat, traversal, progression, etc.)"},
		{Name: "description", Header: "Description", Kind: KindString, Description: "How the mechanic works"},
		{Name: "player_impact", Header: "Impact", Kind: KindString, Description: "Why it matters to players"},
	}
)

// Core field sets per kind. Genre descriptors extend these with a handful
// of genre-specific fields.
func showCoreFields() []Field {
	return []Field{
		{Name: "title", Header: "Title", Kind: KindString, Description: "Official title of the show"},
		{Name: "tagline", Header: "Tagline", Kind: KindString, Description: "Marketing tagline or hook"},
		{Name: "show_summary", Header: "Summary", Kind: KindString, Description: "Concise summary of the show's premise"},
		{Name: "seasons", Header: "Seasons", Kind: KindInt, Format: FormatNumber, Description: "Number of seasons aired"},
		{Name: "episodes", Header: "Episodes", Kind: KindInt, Format: FormatNumber, Description: "Total number of episodes aired"},
		{Name: "first_air_year", Header: "First Aired", Kind: KindInt, Format: FormatYear, Description: "Year the show first aired"},
		{Name: "last_air_year", Header: "Last Aired", Kind: KindInt, Format: FormatYear, Description: "Year the show last aired, 9999 if ongoing"},
		{Name: "creators", Header: "Creators", Kind: KindStringList, Description: "Creators and showrunners"},
		{Name: "characters", Header: "Characters", Kind: KindTable, Description: "Main characters", Columns: characterColumns},
		{Name: "broadcast_info", Header: "Broadcast Info", Kind: KindTable, Description: "Broadcast networks and years", Columns: broadcastColumns},
		{Name: "production_companies", Header: "Production Companies", Kind: KindTable, Description: "Production companies involved", Columns: companyColumns},
	}
}

func movieCoreFields() []Field {
	return []Field{
		{Name: "title", Header: "Title", Kind: KindString, Description: "Movie title"},
		{Name: "tagline", Header: "Tagline", Kind: KindString, Description: "Marketing tagline or hook"},
		{Name: "synopsis", Header: "Synopsis", Kind: KindString, Description: "Short synopsis of the movie"},
		{Name: "release_year", Header: "Released", Kind: KindInt, Format: FormatYear, Description: "Year the movie was released"},
		{Name: "runtime_minutes", Header: "Runtime", Kind: KindInt, Format: FormatRuntime, Description: "Runtime in minutes"},
		{Name: "mpaa_rating", Header: "Rating", Kind: KindString, Description: "Content rating (e.g., PG-13)"},
		{Name: "rating", Header: "Score", Kind: KindFloat, Format: FormatDecimal, Description: "Average critic or audience rating out of 10"},
		{Name: "directors", Header: "Directors", Kind: KindStringList, Description: "List of directors"},
		{Name: "writers", Header: "Writers", Kind: KindStringList, Description: "List of writers"},
		{Name: "budget", Header: "Budget", Kind: KindFloat, Format: FormatMoney, Description: "Estimated production budget in USD"},
		{Name: "worldwide_gross", Header: "Worldwide Gross", Kind: KindFloat, Format: FormatMoney, Description: "Worldwide gross in USD"},
		{Name: "cast", Header: "Cast", Kind: KindTable, Description: "Main cast members", Columns: castColumns},
		{Name: "production_companies", Header: "Production Companies", Kind: KindTable, Description: "Production companies involved", Columns: companyColumns},
		{Name: "awards", Header: "Awards", Kind: KindStringList, Description: "Awards and nominations"},
	}
}

func gameCoreFields() []Field {
	return []Field{
		{Name: "title", Header: "Title", Kind: KindString, Description: "Official game title"},
		{Name: "elevator_pitch", Header: "Pitch", Kind: KindString, Description: "One-sentence hook for the game"},
		{Name: "game_summary", Header: "Summary", Kind: KindString, Description: "Concise summary of premise and core loop"},
		{Name: "release_year", Header: "Released", Kind: KindInt, Format: FormatYear, Description: "Year of first release"},
		{Name: "engine", Header: "Engine", Kind: KindString, Description: "Game engine or primary technology"},
		{Name: "developers", Header: "Developers", Kind: KindStringList, Description: "Development studios"},
		{Name: "publishers", Header: "Publishers", Kind: KindStringList, Description: "Publishing companies"},
		{Name: "metacritic_score", Header: "Metacritic", Kind: KindFloat, Format: FormatDecimal, Description: "Metacritic or aggregate review score"},
		{Name: "studios", Header: "Studios", Kind: KindTable, Description: "Studios and their roles", Columns: studioColumns},
		{Name: "platform_releases", Header: "Platform Releases", Kind: KindTable, Description: "Per-platform release details", Columns: platformColumns},
		{Name: "mechanics", Header: "Mechanics", Kind: KindTable, Description: "Standout gameplay mechanics", Columns: mechanicColumns},
	}
}

func withExtras(base []Field, extras ...Field) []Field {
	out := make([]Field, 0, len(base)+len(extras))
	out = append(out, base...)
	out = append(out, extras...)
	return out
}

func strList(name, header, desc string) Field {
	return Field{Name: name, Header: header, Kind: KindStringList, Description: desc}
}

func str(name, header, desc string) Field {
	return Field{Name: name, Header: header, Kind: KindString, Description: desc}
}

func definitions() []Descriptor {
	return []Descriptor{
		// Generic fallbacks. These mirror the drama schemas, which double as
		// the default show/movie shapes.
		{
			ID:           "show",
			DisplayName:  "Show",
			Description:  "General television series model used when no specific genre is a clear fit.",
			KeyTrait:     "Serialized television storytelling of any genre",
			Label:        "TV show",
			Instructions: "Act as a television analyst compiling a complete profile of a TV series: premise, cast, broadcast history, and production context.",
			Fields:       withExtras(showCoreFields(), strList("themes", "Themes", "Core thematic ideas explored by the show")),
		},
		{
			ID:           "movie",
			DisplayName:  "Movie",
			Description:  "General feature film model used when no specific genre is a clear fit.",
			KeyTrait:     "Feature-length film storytelling of any genre",
			Label:        "movie",
			Instructions: "Act as a film analyst compiling a complete profile of a movie: story, cast, production, box office, and reception.",
			Fields:       withExtras(movieCoreFields(), strList("themes", "Themes", "Core thematic ideas explored by the film")),
		},

		// Show genres.
		{
			ID:           "drama",
			DisplayName:  "Drama",
			Description:  "Detailed television drama intelligence model capturing serialized storytelling, character evolution, and industry recognition.",
			KeyTrait:     "Emotionally charged serialized TV drama anchored by character arcs",
			Label:        "drama series",
			Instructions: "Act as a prestige-TV analyst profiling a drama series: emotional stakes, character evolution across seasons, creative team, and awards trajectory.",
			Fields: withExtras(showCoreFields(),
				strList("themes", "Themes", "Core thematic ideas explored by the drama"),
				str("central_conflict", "Conflict", "The primary emotional or moral conflict propelling the story"),
				Field{Name: "character_arcs", Header: "Character Arcs", Kind: KindTable, Description: "Detailed arcs for principal characters", Columns: arcColumns},
			),
		},
		{
			ID:           "comedy",
			DisplayName:  "Comedy",
			Description:  "Comprehensive intelligence model for humour-driven television series, balancing creative, production, and market context.",
			KeyTrait:     "Television comedy storytelling anchored by recurring humour engines",
			Label:        "comedy series",
			Instructions: "Act as a comedy development executive profiling a comedy series: humour engines, ensemble chemistry, running gags, and cultural resonance.",
			Fields: withExtras(showCoreFields(),
				strList("humour_styles", "Humour Styles", "Dominant styles of humour (satire, slapstick, cringe, etc.)"),
				strList("running_gags", "Running Gags", "Recurring jokes and comedic devices"),
			),
		},
		{
			ID:           "thriller",
			DisplayName:  "Thriller",
			Description:  "Suspense television intelligence model spotlighting investigative craft, tension architecture, and market positioning.",
			KeyTrait:     "High-stakes crime or mystery TV engineered for sustained suspense",
			Label:        "thriller series",
			Instructions: "Act as a suspense specialist profiling a thriller series: tension architecture, investigation structure, antagonists, and twist design.",
			Fields: withExtras(showCoreFields(),
				str("central_mystery", "Mystery", "The central mystery or threat driving the series"),
				strList("plot_twists", "Twists", "Signature twists and reveals, spoiler-light"),
			),
		},
		{
			ID:           "action_adventure_fantasy",
			DisplayName:  "Action Adventure Fantasy",
			Description:  "High-energy television adventure model capturing world-building depth, serialized quest structure, and production ecosystem insights.",
			KeyTrait:     "Serialized action-fantasy television driven by quests and expansive settings",
			Label:        "action-adventure fantasy series",
			Instructions: "Act as a genre-TV analyst profiling an action/adventure/fantasy series: world-building, quest structure, factions, and production scale.",
			Fields: withExtras(showCoreFields(),
				str("setting", "Setting", "Primary world or setting of the series"),
				strList("factions", "Factions", "Major factions, houses, or groups"),
				strList("signature_set_pieces", "Set Pieces", "Memorable action or spectacle sequences"),
			),
		},
		{
			ID:           "science_fiction",
			DisplayName:  "Science Fiction",
			Description:  "Speculative television intelligence model synthesizing world-building, scientific themes, and production context.",
			KeyTrait:     "Technology-driven TV storytelling exploring future-facing ideas",
			Label:        "science fiction series",
			Instructions: "Act as a speculative-fiction analyst profiling a science fiction series: core speculative conceit, technologies, world rules, and thematic questions.",
			Fields: withExtras(showCoreFields(),
				str("speculative_conceit", "Conceit", "The central speculative idea or technology"),
				strList("technologies", "Technologies", "Key fictional technologies or scientific ideas"),
				strList("themes", "Themes", "Philosophical or scientific themes explored"),
			),
		},
		{
			ID:           "reality_competition_lifestyle",
			DisplayName:  "Reality Competition Lifestyle",
			Description:  "Unscripted television intelligence model emphasizing format structure, on-camera talent, and audience hooks.",
			KeyTrait:     "Competition or lifestyle TV storytelling powered by real participants",
			Label:        "reality series",
			Instructions: "Act as an unscripted-format analyst profiling a reality series: format rules, hosts and judges, elimination mechanics, and audience hooks.",
			Fields: withExtras(showCoreFields(),
				str("format_structure", "Format", "How an episode or season is structured"),
				strList("hosts_judges", "Hosts & Judges", "Hosts, judges, and recurring on-camera talent"),
				str("prize", "Prize", "What contestants compete for, if anything"),
			),
		},
		{
			ID:           "documentary_factual",
			DisplayName:  "Documentary Factual",
			Description:  "Comprehensive factual television model capturing investigative craft, storytelling design, and platform reach.",
			KeyTrait:     "Non-fiction television that informs through investigative or observational storytelling",
			Label:        "documentary series",
			Instructions: "Act as a factual-programming analyst profiling a documentary series: subject matter, investigative approach, narration, and credibility signals.",
			Fields: withExtras(showCoreFields(),
				str("subject_matter", "Subject", "The real-world subject the series documents"),
				str("narration_style", "Narration", "Narration or presentation style"),
				strList("key_revelations", "Revelations", "Notable findings or revelations"),
			),
		},
		{
			ID:           "family_animation_kids",
			DisplayName:  "Family Animation Kids",
			Description:  "Family and kids television intelligence model blending creative highlights, educational intent, and market positioning.",
			KeyTrait:     "Family-friendly TV storytelling that balances developmental goals with entertainment",
			Label:        "family/kids series",
			Instructions: "Act as a children's-media analyst profiling a family or kids series: target age range, educational goals, animation style, and franchise footprint.",
			Fields: withExtras(showCoreFields(),
				str("target_age_range", "Ages", "Intended audience age range"),
				str("animation_style", "Animation", "Animation technique or live-action format"),
				strList("educational_goals", "Educational Goals", "Developmental or educational intentions"),
			),
		},
		{
			ID:           "news_informational",
			DisplayName:  "News Informational",
			Description:  "Television news intelligence model capturing editorial architecture, on-air talent, and platform footprint.",
			KeyTrait:     "Timely, verified public-interest journalism delivered as a TV programme",
			Label:        "news programme",
			Instructions: "Act as a broadcast-journalism analyst profiling a news programme: editorial remit, anchors and correspondents, schedule, and reach.",
			Fields: withExtras(showCoreFields(),
				str("editorial_focus", "Focus", "Primary editorial remit (general news, business, politics, etc.)"),
				strList("anchors", "Anchors", "Main anchors and presenters"),
				str("schedule", "Schedule", "Broadcast schedule or cadence"),
			),
		},
		{
			ID:           "sports",
			DisplayName:  "Sports",
			Description:  "Sports television intelligence model encapsulating live and studio coverage strategy, rights positioning, and audience impact.",
			KeyTrait:     "Rights-driven sports TV coverage blending live action and analysis",
			Label:        "sports programme",
			Instructions: "Act as a sports-media analyst profiling a sports programme: competitions covered, presenters and pundits, rights history, and audience reach.",
			Fields: withExtras(showCoreFields(),
				strList("competitions", "Competitions", "Sports competitions or leagues covered"),
				strList("presenters", "Presenters", "Main presenters and pundits"),
				str("rights_holder", "Rights", "Current broadcast rights arrangement"),
			),
		},

		// Movie genres.
		{
			ID:           "drama_movie",
			DisplayName:  "Drama Movie",
			Description:  "Cinematic intelligence model for drama movies that explore nuanced character journeys, social dilemmas, and emotional catharsis.",
			KeyTrait:     "Feature-length character storytelling grounded in emotional stakes.",
			Label:        "drama movie",
			Instructions: "Serve as a prestige drama analyst compiling a character-driven profile of a drama movie: emotional stakes, moral conflicts, transformative performances, production context, awards trajectory, and cultural impact.",
			PromptTemplate: "Provide a layered breakdown of the drama movie '{title}', highlighting emotional arcs, character growth, and production insights.",
			Fields: withExtras(movieCoreFields(),
				strList("themes", "Themes", "Core thematic ideas explored by the drama"),
				str("central_conflict", "Conflict", "The primary emotional or moral conflict propelling the story"),
				str("tone", "Tone", "Overall tone or mood of the drama"),
				Field{Name: "character_arcs", Header: "Character Arcs", Kind: KindTable, Description: "Detailed arcs for principal characters", Columns: arcColumns},
			),
		},
		{
			ID:           "comedy_movie",
			DisplayName:  "Comedy Movie",
			Description:  "Cinematic intelligence model for comedy movies, balancing comedic voice, ensemble dynamics, and cultural resonance.",
			KeyTrait:     "Feature-length comedy storytelling driven by rhythmic humour beats and character chemistry.",
			Label:        "comedy movie",
			Instructions: "Serve as a comedy analyst profiling a comedy movie: comedic voice, ensemble dynamics, standout sequences, and cultural afterlife.",
			Fields: withExtras(movieCoreFields(),
				strList("humour_styles", "Humour Styles", "Dominant styles of humour"),
				strList("standout_scenes", "Standout Scenes", "Most quoted or celebrated comedic sequences"),
			),
		},
		{
			ID:           "action_adventure_movie",
			DisplayName:  "Action Adventure Movie",
			Description:  "Cinematic intelligence model for high-octane action and adventure movies, spotlighting spectacle, heroism, and global stakes.",
			KeyTrait:     "Feature-length action narratives built around escalating set pieces and dynamic locales.",
			Label:        "action-adventure movie",
			Instructions: "Serve as an action-cinema analyst profiling an action/adventure movie: set-piece escalation, stunt craft, locations, and franchise context.",
			Fields: withExtras(movieCoreFields(),
				strList("set_pieces", "Set Pieces", "Signature action sequences in story order"),
				strList("locations", "Locations", "Key filming or story locations"),
				str("franchise", "Franchise", "Franchise or series the movie belongs to, if any"),
			),
		},
		{
			ID:           "fantasy_science_fiction_movie",
			DisplayName:  "Fantasy Science Fiction Movie",
			Description:  "Cinematic intelligence model for fantasy and science fiction movies that construct imaginative worlds, technology frontiers, or supernatural systems.",
			KeyTrait:     "Feature-length speculative storytelling anchored in layered world-building.",
			Label:        "fantasy/science-fiction movie",
			Instructions: "Serve as a speculative-cinema analyst profiling a fantasy or science fiction movie: world rules, speculative conceit, effects craft, and thematic questions.",
			Fields: withExtras(movieCoreFields(),
				str("speculative_conceit", "Conceit", "The central speculative idea, technology, or magic system"),
				strList("world_rules", "World Rules", "Rules that govern the fictional world"),
				strList("effects_highlights", "Effects", "Visual effects or practical craft highlights"),
			),
		},
		{
			ID:           "thriller_mystery_crime_movie",
			DisplayName:  "Thriller Mystery Crime Movie",
			Description:  "Cinematic intelligence model for thriller, mystery, and crime movies driven by investigations, deception, and psychological stakes.",
			KeyTrait:     "Feature-length suspense narratives built on investigations, twists, and escalating tension.",
			Label:        "thriller/mystery/crime movie",
			Instructions: "Serve as a suspense-cinema analyst profiling a thriller, mystery, or crime movie: investigation structure, antagonist design, misdirection, and twist craft.",
			Fields: withExtras(movieCoreFields(),
				str("central_mystery", "Mystery", "The central mystery, crime, or threat"),
				strList("plot_twists", "Twists", "Signature twists and reveals, spoiler-light"),
				str("antagonist", "Antagonist", "Primary antagonist or opposing force"),
			),
		},
		{
			ID:           "romance_movie",
			DisplayName:  "Romance Movie",
			Description:  "Cinematic intelligence model for romance movies centered on intimacy, emotional risk, and relational growth.",
			KeyTrait:     "Feature-length love stories built around relationship dynamics and vulnerability.",
			Label:        "romance movie",
			Instructions: "Serve as a romance-cinema analyst profiling a romance movie: central relationship, obstacles, chemistry, and emotional payoff.",
			Fields: withExtras(movieCoreFields(),
				str("central_relationship", "Relationship", "The central couple or relationship"),
				strList("obstacles", "Obstacles", "Forces keeping the leads apart"),
				str("ending_type", "Ending", "Whether the ending is happy, bittersweet, or tragic"),
			),
		},
		{
			ID:           "horror_movie",
			DisplayName:  "Horror Movie",
			Description:  "Cinematic intelligence model for horror movies engineered to provoke dread through atmosphere, threat design, and psychological unease.",
			KeyTrait:     "Feature-length horror storytelling orchestrating fear, tension, and survival stakes.",
			Label:        "horror movie",
			Instructions: "Serve as a horror-cinema analyst profiling a horror movie: threat design, fear delivery, atmosphere, survival stakes, and subgenre lineage.",
			Fields: withExtras(movieCoreFields(),
				str("threat", "Threat", "The monster, killer, or force at the heart of the horror"),
				str("subgenre", "Subgenre", "Horror subgenre (slasher, supernatural, folk, body, etc.)"),
				strList("scare_techniques", "Scare Craft", "Techniques used to deliver fear"),
			),
		},
		{
			ID:           "documentary_biographical_movie",
			DisplayName:  "Documentary Biographical Movie",
			Description:  "Cinematic intelligence model for documentary and biographical movies that illuminate real people, issues, and events.",
			KeyTrait:     "Fact-driven feature storytelling anchored in real-world insight.",
			Label:        "documentary/biographical movie",
			Instructions: "Serve as a non-fiction cinema analyst profiling a documentary or biographical movie: subject, sourcing, narrative framing, and factual reception.",
			Fields: withExtras(movieCoreFields(),
				str("subject", "Subject", "The real person, event, or issue at the centre"),
				strList("interviewees", "Interviewees", "Notable interview subjects or contributors"),
				str("framing", "Framing", "Narrative framing or point of view"),
			),
		},

		// Game genres.
		{
			ID:           "action_adventure_game",
			DisplayName:  "Action Adventure Game",
			Description:  "Hybrid combat, traversal, and exploration video game model focused on authored narratives and environmental discovery.",
			KeyTrait:     "Quest-driven adventure with tactile combat and world exploration",
			Label:        "action-adventure game",
			Instructions: "Act as a games analyst profiling an action-adventure game: combat and traversal systems, world design, quest structure, and narrative delivery.",
			Fields: withExtras(gameCoreFields(),
				str("world_structure", "World", "Open world, hub-based, or linear structure"),
				strList("traversal_abilities", "Traversal", "Signature traversal abilities or tools"),
			),
		},
		{
			ID:           "shooter_game",
			DisplayName:  "Shooter Game",
			Description:  "Shooter genre model articulating gunplay pillars, map rotation, competitive structure, and live service rhythm.",
			KeyTrait:     "Precision gunplay married with fast tactical decision-making",
			Label:        "shooter game",
			Instructions: "Act as a games analyst profiling a shooter: gunplay feel, perspective, competitive modes, map design, and live-service cadence.",
			Fields: withExtras(gameCoreFields(),
				str("perspective", "Perspective", "First-person or third-person perspective"),
				strList("competitive_modes", "Modes", "Primary competitive or co-op modes"),
				str("esports_scene", "Esports", "State of the competitive or esports scene"),
			),
		},
		{
			ID:           "puzzle_strategy_game",
			DisplayName:  "Puzzle Strategy Game",
			Description:  "Cerebral puzzle and strategy game model emphasising rulesets, difficulty curves, and mastery analytics.",
			KeyTrait:     "Logic-first gameplay that rewards planning and optimisation",
			Label:        "puzzle/strategy game",
			Instructions: "Act as a games analyst profiling a puzzle or strategy game: core ruleset, difficulty curve, mastery ceiling, and community problem-solving culture.",
			Fields: withExtras(gameCoreFields(),
				str("core_ruleset", "Ruleset", "The central rules or systems the player reasons about"),
				str("difficulty_curve", "Difficulty", "How challenge ramps across the game"),
				strList("victory_conditions", "Victory", "How a session or match is won"),
			),
		},
		{
			ID:           "role_playing_game",
			DisplayName:  "Role Playing Game",
			Description:  "Role-playing game model highlighting worldbuilding, character progression, and branching narrative structure.",
			KeyTrait:     "Character-driven storytelling with deep progression layers",
			Label:        "role-playing game",
			Instructions: "Act as a games analyst profiling a role-playing game: setting, character progression systems, branching narrative, and companion design.",
			Fields: withExtras(gameCoreFields(),
				str("setting", "Setting", "World or setting of the RPG"),
				strList("progression_systems", "Progression", "Levelling, skill, and gear systems"),
				str("narrative_branching", "Branching", "How much player choice reshapes the story"),
				strList("companions", "Companions", "Notable companions or party members"),
			),
		},
		{
			ID:           "simulation_sandbox_game",
			DisplayName:  "Simulation Sandbox Game",
			Description:  "Simulation and sandbox game model focusing on systemic depth, creation tools, and player-driven stories.",
			KeyTrait:     "Player-authored creativity layered on deep systemic simulation",
			Label:        "simulation/sandbox game",
			Instructions: "Act as a games analyst profiling a simulation or sandbox game: simulated systems, creation tools, emergent stories, and modding culture.",
			Fields: withExtras(gameCoreFields(),
				strList("simulated_systems", "Systems", "The real or fictional systems being simulated"),
				strList("creation_tools", "Creation", "Building or creation tools offered to players"),
				str("modding_support", "Modding", "Official or community modding support"),
			),
		},
		{
			ID:           "sports_racing_game",
			DisplayName:  "Sports Racing Game",
			Description:  "Sports and racing game model covering licences, rosters, physics, and live service cadence.",
			KeyTrait:     "Authentic competition blended with live content and monetisation programs",
			Label:        "sports/racing game",
			Instructions: "Act as a games analyst profiling a sports or racing game: licences, physics model, roster or vehicle depth, and yearly release rhythm.",
			Fields: withExtras(gameCoreFields(),
				strList("licences", "Licences", "Official leagues, teams, or manufacturers licensed"),
				str("physics_model", "Physics", "Arcade, simcade, or simulation physics approach"),
				str("release_cadence", "Cadence", "Annual, live-service, or one-off release model"),
			),
		},
		{
			ID:           "horror_survival_game",
			DisplayName:  "Horror Survival Game",
			Description:  "Horror and survival game model emphasising tension, resource scarcity, and fear delivery systems.",
			KeyTrait:     "Sustained dread with deliberate vulnerability management",
			Label:        "horror/survival game",
			Instructions: "Act as a games analyst profiling a horror or survival game: threat design, resource scarcity, fear pacing, and player vulnerability.",
			Fields: withExtras(gameCoreFields(),
				str("threat", "Threat", "The central threat stalking the player"),
				strList("survival_systems", "Survival", "Resource, crafting, or sanity systems"),
				str("fear_pacing", "Pacing", "How dread and relief are paced"),
			),
		},
		{
			ID:           "mmo_online_game",
			DisplayName:  "MMO Online Game",
			Description:  "MMO and persistent online game model focusing on operations, social systems, and endgame activities.",
			KeyTrait:     "Always-on world with layered social, progression, and live operations",
			Label:        "MMO game",
			Instructions: "Act as a games analyst profiling an MMO or persistent online game: world persistence, social systems, endgame loops, and live operations.",
			Fields: withExtras(gameCoreFields(),
				str("subscription_model", "Model", "Business model (subscription, free-to-play, buy-to-play)"),
				strList("endgame_activities", "Endgame", "Primary endgame loops and activities"),
				strList("social_systems", "Social", "Guilds, raids, economies, and other social systems"),
				str("peak_concurrent_players", "Peak Players", "Reported peak or concurrent player figures"),
			),
		},
	}
}
