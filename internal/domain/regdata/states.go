package regdata

// usStates is the raw jurisdiction reference table, loaded once at startup
// and never mutated. Regulation content is external reference data, not a
// product of the pipeline.
var usStates = []JurisdictionRecord{
	{
		Code: "AK", Name: "Alaska",
		Regulations:      []string{"Alaska Personal Information Protection Act"},
		RiskTier:         TierLow,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Data breach notification", "Reasonable security measures"},
		Penalties:        []string{"Up to $500 per violation"},
		EffectiveDate:    "2009-07-01",
		Notes:            "Standard breach notification law",
	},
	{
		Code: "AL", Name: "Alabama",
		Regulations:      []string{"Alabama Data Breach Notification Act"},
		RiskTier:         TierLow,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Data breach notification within 45 days"},
		Penalties:        []string{"Up to $500,000 per breach"},
		EffectiveDate:    "2018-06-01",
		Notes:            "Basic breach notification requirements",
	},
	{
		Code: "AR", Name: "Arkansas",
		Regulations:      []string{"Arkansas Personal Information Protection Act"},
		RiskTier:         TierLow,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Data breach notification", "Security measures"},
		Penalties:        []string{"Up to $10,000 per violation"},
		EffectiveDate:    "2003-08-12",
		Notes:            "Standard breach notification law",
	},
	{
		Code: "AZ", Name: "Arizona",
		Regulations:      []string{"Arizona Data Breach Notification Law"},
		RiskTier:         TierLow,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Data breach notification within 45 days"},
		Penalties:        []string{"Up to $500,000 per breach"},
		EffectiveDate:    "2006-12-31",
		Notes:            "Basic breach notification requirements",
	},
	{
		Code: "CA", Name: "California",
		Regulations:      []string{"CCPA", "CPRA", "California Privacy Rights Act", "California Consumer Privacy Act"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of data sales", "Consent for sensitive data", "Data minimization", "Purpose limitation", "Right to correct inaccurate data"},
		Penalties:        []string{"Up to $7,500 per intentional violation", "Up to $2,500 per unintentional violation"},
		EffectiveDate:    "2020-01-01",
		Notes:            "Most comprehensive state privacy law in the US",
	},
	{
		Code: "CO", Name: "Colorado",
		Regulations:      []string{"Colorado Privacy Act (CPA)"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data", "Data minimization", "Universal opt-out mechanism"},
		Penalties:        []string{"Up to $20,000 per violation"},
		EffectiveDate:    "2023-07-01",
		Notes:            "Comprehensive privacy law with universal opt-out",
	},
	{
		Code: "CT", Name: "Connecticut",
		Regulations:      []string{"Connecticut Data Privacy Act (CTDPA)"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data", "Data minimization"},
		Penalties:        []string{"Up to $5,000 per violation"},
		EffectiveDate:    "2023-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "DE", Name: "Delaware",
		Regulations:      []string{"Delaware Personal Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $10,000 per violation"},
		EffectiveDate:    "2025-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "FL", Name: "Florida",
		Regulations:      []string{"Florida Digital Bill of Rights"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $50,000 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "GA", Name: "Georgia",
		Regulations:      []string{"Georgia Personal Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "HI", Name: "Hawaii",
		Regulations:      []string{"Hawaii Consumer Privacy Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "IA", Name: "Iowa",
		Regulations:      []string{"Iowa Consumer Data Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "ID", Name: "Idaho",
		Regulations:      []string{"Idaho Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "IL", Name: "Illinois",
		Regulations:      []string{"BIPA", "Illinois Biometric Information Privacy Act"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Written consent for biometric data collection", "Disclosure of purpose and retention period", "Prohibition on selling biometric data", "Right of action for violations"},
		Penalties:        []string{"$1,000-$5,000 per violation"},
		EffectiveDate:    "2008-10-03",
		Notes:            "Strict biometric data protection law",
	},
	{
		Code: "IN", Name: "Indiana",
		Regulations:      []string{"Indiana Consumer Data Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2026-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "KS", Name: "Kansas",
		Regulations:      []string{"Kansas Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "KY", Name: "Kentucky",
		Regulations:      []string{"Kentucky Consumer Data Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2026-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "LA", Name: "Louisiana",
		Regulations:      []string{"Louisiana Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MA", Name: "Massachusetts",
		Regulations:      []string{"Massachusetts Data Privacy Law"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MD", Name: "Maryland",
		Regulations:      []string{"Maryland Online Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-10-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "ME", Name: "Maine",
		Regulations:      []string{"Maine Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MI", Name: "Michigan",
		Regulations:      []string{"Michigan Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MN", Name: "Minnesota",
		Regulations:      []string{"Minnesota Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MO", Name: "Missouri",
		Regulations:      []string{"Missouri Data Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-08-28",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MS", Name: "Mississippi",
		Regulations:      []string{"Mississippi Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "MT", Name: "Montana",
		Regulations:      []string{"Montana Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-10-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NC", Name: "North Carolina",
		Regulations:      []string{"North Carolina Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-10-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "ND", Name: "North Dakota",
		Regulations:      []string{"North Dakota Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NE", Name: "Nebraska",
		Regulations:      []string{"Nebraska Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NH", Name: "New Hampshire",
		Regulations:      []string{"New Hampshire Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-01-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NJ", Name: "New Jersey",
		Regulations:      []string{"New Jersey Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-01-15",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NM", Name: "New Mexico",
		Regulations:      []string{"New Mexico Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "NV", Name: "Nevada",
		Regulations:      []string{"Nevada Privacy of Information Collected on the Internet from Consumers Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Opt-out of data sales", "Privacy policy requirements"},
		Penalties:        []string{"Up to $5,000 per violation"},
		EffectiveDate:    "2019-10-01",
		Notes:            "Limited to data sales opt-out",
	},
	{
		Code: "NY", Name: "New York",
		Regulations:      []string{"NY SHIELD Act", "New York Privacy Act"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Data breach notification", "Reasonable security measures", "Consumer rights (proposed)", "Opt-out of targeted advertising (proposed)"},
		Penalties:        []string{"Up to $5,000 per violation"},
		EffectiveDate:    "2020-03-21",
		Notes:            "Comprehensive data security law with proposed privacy enhancements",
	},
	{
		Code: "OH", Name: "Ohio",
		Regulations:      []string{"Ohio Personal Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "OK", Name: "Oklahoma",
		Regulations:      []string{"Oklahoma Computer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "OR", Name: "Oregon",
		Regulations:      []string{"Oregon Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "PA", Name: "Pennsylvania",
		Regulations:      []string{"Pennsylvania Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "RI", Name: "Rhode Island",
		Regulations:      []string{"Rhode Island Data Transparency and Privacy Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "SC", Name: "South Carolina",
		Regulations:      []string{"South Carolina Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "SD", Name: "South Dakota",
		Regulations:      []string{"South Dakota Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "TN", Name: "Tennessee",
		Regulations:      []string{"Tennessee Information Protection Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "TX", Name: "Texas",
		Regulations:      []string{"Texas Data Privacy and Security Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "UT", Name: "Utah",
		Regulations:      []string{"Utah Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2023-12-31",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "VA", Name: "Virginia",
		Regulations:      []string{"Virginia Consumer Data Protection Act"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data", "Data minimization", "Purpose limitation"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2023-01-01",
		Notes:            "Comprehensive privacy law with strict enforcement",
	},
	{
		Code: "VT", Name: "Vermont",
		Regulations:      []string{"Vermont Data Broker Regulation"},
		RiskTier:         TierLow,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Data broker registration", "Security requirements", "Opt-out mechanisms"},
		Penalties:        []string{"Up to $5,000 per violation"},
		EffectiveDate:    "2019-01-01",
		Notes:            "Limited to data broker regulation",
	},
	{
		Code: "WA", Name: "Washington",
		Regulations:      []string{"Washington My Health My Data Act"},
		RiskTier:         TierHigh,
		EnforcementLevel: "strict",
		KeyRequirements:  []string{"Consent for health data collection", "Prohibition on geofencing", "Right to delete health data", "Restrictions on data sales"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2024-03-31",
		Notes:            "Strict health data protection law",
	},
	{
		Code: "WI", Name: "Wisconsin",
		Regulations:      []string{"Wisconsin Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "WV", Name: "West Virginia",
		Regulations:      []string{"West Virginia Consumer Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},
	{
		Code: "WY", Name: "Wyoming",
		Regulations:      []string{"Wyoming Consumer Data Privacy Act"},
		RiskTier:         TierMedium,
		EnforcementLevel: "moderate",
		KeyRequirements:  []string{"Consumer rights (access, deletion, portability)", "Opt-out of targeted advertising", "Consent for sensitive data"},
		Penalties:        []string{"Up to $7,500 per violation"},
		EffectiveDate:    "2025-07-01",
		Notes:            "Comprehensive privacy law",
	},}
