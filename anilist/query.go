// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import "fmt"

// mediaCardSubquery is the selection set shown in media lists.
const mediaCardSubquery = `
id
type
format
status
isAdult
title {
	romaji
	english
	native
}
genres
tags {
	name
	rank
}
episodes
chapters
averageScore
popularity
bannerImage
coverImage {
	extraLarge
	large
}
startDate {
	year
}
endDate {
	year
}
siteUrl
`

const pageInfoSubquery = `
pageInfo {
	currentPage
	hasNextPage
}
`

// listingQuery is the unfiltered popular anime listing.
var listingQuery = fmt.Sprintf(`
query ($page: Int, $perPage: Int, $isAdult: Boolean) {
	Page(page: $page, perPage: $perPage) {
		%s
		media(type: ANIME, sort: [POPULARITY_DESC], isAdult: $isAdult) {
			%s
			duration
			rankings {
				season
			}
		}
	}
}
`, pageInfoSubquery, mediaCardSubquery)

// mediaSearchQuery searches media by title.
var mediaSearchQuery = fmt.Sprintf(`
query ($search: String, $type: MediaType, $page: Int, $perPage: Int, $isAdult: Boolean) {
	Page(page: $page, perPage: $perPage) {
		%s
		media(search: $search, type: $type, isAdult: $isAdult) {
			%s
			rankings {
				type
				format
				allTime
				id
			}
		}
	}
}
`, pageInfoSubquery, mediaCardSubquery)

// newsQuery is the filtered feed of media shown as news.
var newsQuery = fmt.Sprintf(`
query ($genre: String, $type: MediaType, $status: MediaStatus, $sort: [MediaSort], $page: Int, $perPage: Int, $isAdult: Boolean) {
	Page(page: $page, perPage: $perPage) {
		%s
		media(genre: $genre, type: $type, status: $status, sort: $sort, isAdult: $isAdult) {
			%s
			source
			description(asHtml: false)
		}
	}
}
`, pageInfoSubquery, mediaCardSubquery)

// characterSearchQuery searches characters by name.
var characterSearchQuery = fmt.Sprintf(`
query ($search: String, $sort: [CharacterSort], $page: Int, $perPage: Int) {
	Page(page: $page, perPage: $perPage) {
		%s
		characters(search: $search, sort: $sort) {
			id
			name {
				full
				native
			}
			image {
				large
			}
			age
			gender
			bloodType
			favourites
			siteUrl
		}
	}
}
`, pageInfoSubquery)

// mediaDetailsQuery fetches everything shown on a media detail view.
var mediaDetailsQuery = fmt.Sprintf(`
query ($id: Int) {
	Media(id: $id) {
		%s
		idMal
		source
		description(asHtml: false)
		duration
		volumes
		meanScore
		trending
		season
		hashtag
		startDate {
			year
			month
			day
		}
		endDate {
			year
			month
			day
		}
		nextAiringEpisode {
			id
			episode
			timeUntilAiring
		}
		trailer {
			id
			site
			thumbnail
		}
		studios(isMain: true) {
			nodes {
				id
				name
			}
		}
		rankings {
			id
			rank
			context
			allTime
		}
		characters(page: 1, perPage: 10, sort: [ROLE, FAVOURITES_DESC]) {
			nodes {
				id
				name {
					full
				}
				image {
					large
				}
			}
		}
	}
}
`, mediaCardSubquery)

// characterDetailsQuery fetches everything shown on a character detail view.
const characterDetailsQuery = `
query ($id: Int) {
	Character(id: $id) {
		id
		name {
			full
			native
		}
		image {
			large
		}
		description(asHtml: false)
		age
		gender
		bloodType
		favourites
		siteUrl
		media(page: 1, perPage: 10, sort: [POPULARITY_DESC]) {
			nodes {
				id
				type
				title {
					romaji
					english
				}
				coverImage {
					extraLarge
				}
			}
		}
	}
}
`

// reviewsQuery lists reviews of a media.
var reviewsQuery = fmt.Sprintf(`
query ($mediaId: Int, $sort: [ReviewSort], $page: Int, $perPage: Int) {
	Page(page: $page, perPage: $perPage) {
		%s
		reviews(mediaId: $mediaId, sort: $sort) {
			id
			mediaId
			userId
			summary
			body(asHtml: false)
			score
			createdAt
			user {
				id
				name
				avatar {
					medium
				}
			}
		}
	}
}
`, pageInfoSubquery)
