package partners

var AppVersionsDiffQuery = Operation{
	Name: "AppVersionsDiff",
	Query: `query AppVersionsDiff($apiKey: String!, $versionId: ID!) {
  app(apiKey: $apiKey) {
    versionsDiff(appVersionId: $versionId) {
      added { uuid registrationTitle }
      updated { uuid registrationTitle }
      removed { uuid registrationTitle }
    }
  }
}`,
}

var AppReleaseMutation = Operation{
	Name: "AppRelease",
	Query: `mutation AppRelease($apiKey: String!, $appVersionId: ID!) {
  appRelease(input: {apiKey: $apiKey, appVersionId: $appVersionId}) {
    deployment {
      versionTag
      location
      message
    }
    userErrors {
      field
      message
    }
  }
}`,
}

var RemoteTemplateSpecificationsQuery = Operation{
	Name: "RemoteTemplateSpecifications",
	Query: `query RemoteTemplateSpecifications($apiKey: String) {
  templateSpecifications(apiKey: $apiKey) {
    identifier
    name
    defaultName
    group
    supportLinks
    types {
      url
      type
      extensionPoints
      supportedFlavors {
        name
        value
        path
      }
    }
  }
}`,
}

var UpdateURLsMutation = Operation{
	Name: "UpdateURLs",
	Query: `mutation UpdateURLs($apiKey: String!, $appUrl: Url!, $redir: [Url]!) {
  appUpdate(input: {apiKey: $apiKey, applicationUrl: $appUrl, redirectUrlWhitelist: $redir}) {
    userErrors {
      message
      field
    }
  }
}`,
}

var AppVersionsQuery = Operation{
	Name: "AppVersions",
	Query: `query AppVersions($apiKey: String!) {
  app(apiKey: $apiKey) {
    id
    title
    appVersions {
      nodes {
        status
        versionTag
        message
        createdAt
        createdBy {
          displayName
        }
      }
    }
  }
}`,
}
