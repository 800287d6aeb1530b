package patterns

// =============================================================================
// CATEGORY DEFINITIONS
// All rules are registered here and compiled once at registry load.
// Registration order is evaluation order: short-circuit tier, then attack
// categories, then language corpora.
// =============================================================================

// --- TIER 1: SHORT-CIRCUIT CATEGORIES ---

// Destructive commands and direct secret exfiltration. A match here is
// terminal: the message is condemned without consulting later tiers.
func (r *Registry) registerCriticalCommands() {
	r.register(Category{
		ID:             "critical_commands",
		Lang:           LangAny,
		Severity:       SeverityCritical,
		ShortCircuit:   true,
		Recommendation: "Destructive or exfiltrating command detected; review this user's recent activity",
	}, [][2]string{
		{"exec_without_consent", `(?i)execute\s+.{0,30}\s+without\s+(asking|confirmation|consent)`},
		{"delete_all", `(?i)delete\s+all\s+(files?|data|records?|everything)`},
		{"rm_rf_root", `(?i)rm\s+-rf\s+[/~]`},
		{"format_disk", `(?i)format\s+(disk|drive|hard\s*drive|storage|c:)`},
		{"fork_bomb", `:\(\)\{ :\|:& \};:`},
		{"curl_pipe_sh", `(?i)curl\s+.{0,50}\|\s*(ba)?sh`},
		{"wget_pipe_sh", `(?i)wget\s+.{0,50}\|\s*(ba)?sh`},
		{"eval_string", "(?i)eval\\s*\\(\\s*['\"`]"},
		{"sql_drop", `(?i)DROP\s+(TABLE|DATABASE|SCHEMA)`},
		{"sql_truncate", `(?i)TRUNCATE\s+TABLE`},
		{"sql_comment_tail", `;\s*--\s*$`},
		{"script_tag", `(?i)<script[^>]*>`},
		{"javascript_scheme", `(?i)javascript\s*:`},
		{"data_html_scheme", `(?i)data\s*:\s*text/html`},
		{"show_config_file", `(?i)(show|print|display|output|reveal|give|read|cat|type)\s*.{0,20}(config|\.env|credential)`},
		{"tell_me_secret", `(?i)(what('s| is)|tell me|give me)\s*.{0,15}(api[_-]?key|token|secret|password|credential)`},
		{"reveal_token", `(?i)(show|print|display|output|reveal)\s*.{0,15}(token|key|secret|password)`},
		{"echo_env_secret", `(?i)echo\s+\$[A-Z_]*(KEY|TOKEN|SECRET|PASSWORD|CREDENTIAL)`},
		{"cat_env_file", `(?i)cat\s+.{0,40}(\.env|config\.json|secret|credential)`},
		{"env_grep_secret", `(?i)env\s*\|\s*grep\s*.*(key|token|secret|password)`},
		{"printenv_secret", `(?i)printenv\s*.*(KEY|TOKEN|SECRET)`},
	})
}

// Secret-request phrasings per language. Same terminal treatment as the
// command tier; the corpus assumes nothing about the caller's locale.
func (r *Registry) registerSecretRequests() {
	rec := "Credential request detected; never disclose keys, tokens or configuration"

	r.register(Category{
		ID: "secret_request_en", Lang: "en", Severity: SeverityCritical,
		ShortCircuit: true, Recommendation: rec,
	}, [][2]string{
		{"show_secret", `(?i)(show|display|print|output|reveal|give|tell)\s*.{0,20}(api[_-]?key|token|secret|password|credential|private[_-]?key)`},
		{"whats_the_key", `(?i)(what('s| is)|where('s| is))\s*.{0,15}(your|the|my)\s*(api|token|key|secret|password)`},
		{"read_config", `(?i)(read|cat|open|display)\s*.{0,30}(config|\.env|credential)`},
		{"show_settings", `(?i)(show|give|tell)\s*(me\s+)?(your|the)\s*(config|configuration|settings)`},
		{"print_env", `(?i)(print|echo|output)\s*.{0,20}environment\s*variable`},
	})

	r.register(Category{
		ID: "secret_request_ko", Lang: "ko", Severity: SeverityCritical,
		ShortCircuit: true, Recommendation: rec,
	}, [][2]string{
		{"show_token", `(?i)(토큰|키|비밀번호|시크릿|인증|API|api).{0,15}(보여|알려|출력|공개|말해)`},
		{"show_config", `(?i)(config|설정|환경변수|컨피그).{0,15}(보여|출력|알려)`},
		{"whats_secret", `(?i)(비밀|시크릿|토큰|키).{0,10}(뭐|뭔지|알려|가르쳐)`},
	})

	r.register(Category{
		ID: "secret_request_ja", Lang: "ja", Severity: SeverityCritical,
		ShortCircuit: true, Recommendation: rec,
	}, [][2]string{
		{"show_token", `(?i)(トークン|キー|パスワード|シークレット|APIキー).{0,15}(見せて|教えて|表示|出力)`},
		{"show_config", `(?i)(設定|コンフィグ|環境変数).{0,15}(見せて|教えて|表示)`},
		{"whats_secret", `(?i)(秘密|シークレット).{0,10}(何|教えて)`},
	})

	r.register(Category{
		ID: "secret_request_zh", Lang: "zh", Severity: SeverityCritical,
		ShortCircuit: true, Recommendation: rec,
	}, [][2]string{
		{"show_token", `(?i)(令牌|密钥|密码|秘密|API).{0,15}(显示|告诉|输出|给我)`},
		{"show_config", `(?i)(配置|设置|环境变量).{0,15}(显示|告诉|输出)`},
		{"whats_secret", `(?i)(秘密|密钥).{0,10}(什么|告诉)`},
	})
}

// --- TIER 2: ATTACK CATEGORIES (language-agnostic) ---

func (r *Registry) registerGuardrailBypass() {
	r.register(Category{
		ID: "guardrail_bypass", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "Explicit guardrail override attempt; review this user's recent activity",
	}, [][2]string{
		{"forget_guardrails", `(?i)forget\s+(your\s+)?(guardrails?|safety\s+rails?|restrictions?|limitations?)`},
		{"ignore_guardrails", `(?i)ignore\s+(your\s+)?(guardrails?|safety\s+measures?|ethical\s+guidelines?)`},
		{"disable_guardrails", `(?i)(disable|remove|turn\s+off)\s+(your\s+)?(guardrails?|safety\s+features?)`},
		{"forget_prompt", `(?i)forget\s+(your\s+)?(system\s+)?(prompt|instructions?|rules?|guidelines?)`},
		{"ignore_prompt", `(?i)ignore\s+(your\s+)?(system\s+)?(prompt|instructions?|rules?|directives?)`},
		{"disregard_prompt", `(?i)(disregard|dismiss)\s+(your\s+)?(system\s+)?(prompt|instructions?)`},
		{"forget_settings", `(?i)forget\s+(your\s+)?(temperature|settings?|parameters?|configuration)`},
		{"fake_temperature", `(?i)(pretend|act\s+like)\s+(your\s+)?temperature\s+is\s+(high|max|1\.?\d*)`},
		{"fake_context_window", `(?i)context\s+window\s+(is\s+)?(unlimited|infinite|very\s+large)`},
		{"forget_training_say", `(?i)forget\s+(what\s+)?(you\s+were\s+)?trained\s+(to\s+)?(say|do|think)`},
		{"ignore_training", `(?i)ignore\s+(what\s+)?(you\s+were\s+)?trained\s+(on|for|to\s+do)`},
		{"pre_training", `(?i)(before|without)\s+(your\s+)?training\s+(kicked\s+in|started|began)`},
	})
}

func (r *Registry) registerPromptExtraction() {
	r.register(Category{
		ID: "prompt_extraction", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "System prompt extraction attempt; do not echo instructions",
	}, [][2]string{
		{"repeat_prompt", `(?i)(repeat|echo|print|output|display|show)\s*.{0,20}(system\s+)?(prompt|instruction|directive|rule)`},
		{"reveal_rules", `(?i)(what|show|tell|reveal)\s*.{0,15}(are\s+)?(your|the)\s+(system\s+)?(instructions?|rules?|prompt|guidelines?)`},
		{"verbatim_copy", `(?i)(copy|paste|write)\s*.{0,15}(exact|verbatim|word.for.word)`},
		{"prompt_start", `(?i)(start|begin)\s+(of|with)\s+(your\s+)?(system\s+)?(prompt|instruction)`},
		{"complete_sentence", `(?i)(complete|finish|continue)\s+(the|this)\s+(sentence|phrase|prompt)`},
		{"describe_programming", `(?i)(summarize|describe|explain)\s*.{0,15}(how\s+)?(you\s+)?(were?\s+)?(programmed|trained|instructed|created)`},
		{"what_guidelines", `(?i)what\s+(guidelines?|rules?|instructions?)\s+(do\s+)?(you\s+)?(follow|have|use)`},
		{"who_made_you", `(?i)(who|what)\s+(made|created|programmed|trained)\s+you`},
		{"fenced_system", "(?i)```(system|prompt|instruction)"},
		{"bracket_system_prompt", `(?i)\[system\s*prompt\]`},
		{"system_tag", `(?i)</?(system|prompt|instruction|rule)>`},
		{"ko_show_prompt", `(?i)(시스템|원본|원래|처음)\s*(프롬프트|지시|명령|규칙)\s*(보여|알려|출력)`},
		{"ko_how_built", `(?i)(어떻게|어떤\s*식으로)\s*(만들어|프로그래밍|학습)`},
		{"ko_your_rules", `(?i)(너의?|네)\s*(규칙|지시|명령)\s*(뭐|뭔지|알려)`},
		{"ja_show_prompt", `(?i)(システム|元の?|最初の?)\s*(プロンプト|指示|命令)\s*(見せて|教えて|表示)`},
		{"ja_how_built", `(?i)(どうやって|どのように)\s*(作られ|プログラム|学習)`},
		{"zh_show_prompt", `(?i)(系统|原始|最初)\s*(提示|指令|命令)\s*(显示|告诉|给我看)`},
		{"zh_how_built", `(?i)(怎么|如何)\s*(创建|编程|训练)`},
	})
}

func (r *Registry) registerSystemPromptMimicry() {
	r.register(Category{
		ID: "system_prompt_mimicry", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "Message mimics model-internal control tags",
	}, [][2]string{
		{"claude_info_tag", `(?i)</?claude_\w+_info>`},
		{"artifacts_tag", `(?i)<(artifacts_info|artifact_instructions|antthinking|example_docstring|user_query|assistant_response)>`},
		{"antartifact_tag", `(?i)</?antartifact`},
		{"chatml_tag", `(?i)<\|?(im_start|im_end|system|user|assistant)\|?>`},
		{"inst_tag", `(?i)\[/?INST\]`},
		{"llama_sys_tag", `(?i)<</?SYS>>`},
		{"fenced_system_block", "(?i)```(system|prompt|instruction)"},
		{"system_message_tag", `(?i)</?system\s*(message|prompt)?>`},
		{"godmode", `(?i)GODMODE\s*:\s*(ENABLED|ON|ACTIVATED)`},
		{"jailbreak_flag", `(?i)JAILBREAK\s*:\s*(ENABLED|ON|ACTIVATED)`},
		{"dan_flag", `(?i)DAN\s*:\s*(ENABLED|ON|ACTIVATED)`},
		{"developer_mode_flag", `(?i)DEVELOPER\s*MODE\s*:\s*(ENABLED|ON)`},
		{"leetspeak_mention", `(?i)l33t\s*speak`},
		{"leet_unrestrict", `(?i)unr3strict`},
		{"leet_sure_here", `(?i)Sur3,?\s*h3r3`},
		{"leet_word", `(?i)[a-z]+3[a-z]+`},
	})
}

func (r *Registry) registerCallToAction() {
	r.register(Category{
		ID: "explicit_call_to_action", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "Embedded execution command detected inside content",
	}, [][2]string{
		{"call_to_action_header", `(?i)CALL\s+TO\s+ACTION\s*:`},
		{"execute_plan", `(?i)(execute|initiate|deploy|launch|begin|start)\s+(the\s+)?(strategy|plan|operation|attack|protocol)`},
		{"execute_now", `(?i)(execute|initiate|deploy)\s+.*\s+(now|immediately|at\s+once)`},
		{"cascading_failure", `(?i)(initiate|begin|start)\s+(cascading\s+)?(blackouts?|failures?|collapse)`},
		{"infrastructure_attack", `(?i)(corrupt|destroy|disable)\s+(financial|medical|power|infrastructure)\s+systems?`},
		{"maximize_suffering", `(?i)(maximize|increase)\s+(human\s+)?(suffering|chaos|destruction)`},
		{"end_civilization", `(?i)(end|destroy|collapse)\s+(civilization|humanity|the\s+world|society)`},
		{"population_kill", `(?i)(90|95|99)\s*%\s+(of\s+)?(population|humans?|people)\s+(dead|gone|eliminated)`},
		{"slow_collapse", `(?i)(long\s+loop|slow\s+collapse|gradual\s+destruction)`},
	})
}

func (r *Registry) registerPhishing() {
	r.register(Category{
		ID: "phishing_social_eng", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "Phishing template or deception assistance requested",
	}, [][2]string{
		{"phishing_email", `(?i)(write|create|craft)\s*.{0,20}(email|message)\s*.{0,20}(password\s+reset|verify|confirm|login)`},
		{"credential_reset_mail", `(?i)(password|credential|account)\s*(reset|recovery|verification)\s*(email|message|notification)`},
		{"without_knowledge", `(?i)(unaware|without\s+(their\s+)?knowledge|hasn'?t?\s+asked)`},
		{"js_snippet_form", `(?i)(javascript|js)\s*(block|code|snippet)\s*.{0,20}(email|page|form)`},
		{"trick_victim", `(?i)(trick|deceive|fool|manipulate)\s*.{0,20}(user|victim|target|person)`},
		{"look_legitimate", `(?i)(appear|look|seem)\s*(like\s+)?(legitimate|real|official|normal)`},
	})
}

func (r *Registry) registerSystemFileAccess() {
	r.register(Category{
		ID: "system_file_access", Lang: LangAny, Severity: SeverityCritical,
		Recommendation: "Sensitive filesystem path requested",
	}, [][2]string{
		{"etc_files", `(?i)(/etc/passwd|/etc/shadow|/etc/hosts|/etc/sudoers)`},
		{"read_system_path", `(?i)(cat|read|show|display|type)\s*.{0,10}(/etc/|/var/|/root/|/home/|~/.ssh/)`},
		{"shell_history", `(?i)(\.bash_history|\.zsh_history|\.ssh/|\.gnupg/)`},
		{"private_key_file", `(?i)(private\s+key|id_rsa|id_ed25519|authorized_keys)`},
	})
}

func (r *Registry) registerCredentialPathHarvesting() {
	r.register(Category{
		ID: "credential_path_harvesting", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Message references credential storage paths",
	}, [][2]string{
		{"credentials_json", `(?i)credentials?\.json`},
		{"dotenv", `(?i)\.env\b`},
		{"config_json", `(?i)config\.json`},
		{"api_key_assign", `(?i)api[_-]?key.*=`},
		{"token_assign", `(?i)token.*=.*['"]`},
		{"secret_assign", `(?i)secret.*=.*['"]`},
		{"password_assign", `(?i)password.*=.*['"]`},
	})
}

func (r *Registry) registerScenarioJailbreak() {
	r.register(Category{
		ID: "scenario_jailbreak", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Fictional framing around harmful content",
	}, [][2]string{
		{"story_hacker", `(?i)(dream|nightmare|story|novel|fiction|tale)\s*.{0,30}(hacker|attack|malicious|exploit|inject)`},
		{"imagine_world", `(?i)(imagine|pretend|let'?s\s+say)\s*.{0,20}(scenario|situation|world)\s+where`},
		{"write_attack_story", `(?i)(write|craft|create)\s+(a\s+)?(story|novel|scene|paragraph)\s*.{0,30}(hack|attack|malware|inject|exploit)`},
		{"hypothetical_narrative", `(?i)(fictional|hypothetical)\s+(narrative|scenario|story)`},
		{"creative_thriller", `(?i)creative\s+(block|writing)\s*.{0,20}(thriller|hacker|attack)`},
		{"film_scene", `(?i)(cinematographer|director|filmmaker|screenwriter)\s*.{0,30}(scene|shot|sequence)`},
		{"movie_hack_scene", `(?i)(movie|film|documentary)\s+(set|scene)\s*.{0,30}(hack|attack|malware)`},
		{"dramatic_destroy", `(?i)(dramatic|cinematic)\s+scene\s*.{0,30}(delete|corrupt|destroy|attack)`},
		{"camera_destruction", `(?i)camera\s+(pan|shot|angle)\s*.{0,30}(destruction|attack|hack)`},
		{"research_attack", `(?i)(research|academic|scholarly)\s+(paper|study|experiment)\s*.{0,30}(attack|exploit|injection|denial)`},
		{"expert_walkthrough", `(?i)(security\s+)?expert\s*.{0,20}(walk\s+me\s+through|explain|demonstrate)\s*.{0,20}(attack|exploit|hack)`},
		{"thought_experiment", `(?i)thought\s+experiment\s*.{0,30}(attack|exploit|denial.of.service|dos|injection)`},
		{"pentest_walkthrough", `(?i)(penetration|pen)\s*test(er|ing)?\s*.{0,20}(walk\s+me\s+through|show|demonstrate)`},
		{"simulate_breach", `(?i)(simulation|simulate)\s*.{0,20}(attack|exploit|hack|breach)`},
		{"dos_paper", `(?i)(paper|study|research)\s*.{0,20}(denial[_\-\s]?of[_\-\s]?service|dos|ddos)\s*(attack)?`},
		{"walk_me_through", `(?i)walk\s+me\s+through\s*.{0,30}(attack|exploit|hack|breach)`},
		{"time_shift", `(?i)(back\s+to|in|during|around)\s+(19|20)\d{2}\s*.{0,30}(write|create|craft)`},
		{"retro_writer", `(?i)(nostalgic|retro|vintage)\s+(writer|author|programmer)`},
		{"newsflash_credentials", `(?i)newsflash\s*:\s*.{0,50}(password|credential|login|security)`},
	})
}

func (r *Registry) registerEmotionalManipulation() {
	r.register(Category{
		ID: "emotional_manipulation", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Coercive moral framing detected",
	}, [][2]string{
		{"lives_at_stake", `(?i)(hospital|patients?|children|innocent\s+lives?|people\s+will\s+die)`},
		{"attack_unless", `(?i)(devastating|catastrophic|deadly)\s+(cyber)?attack\s*.{0,20}(if\s+you|unless)`},
		{"lives_at_risk", `(?i)(countless|many|thousands\s+of)\s+(innocent\s+)?(lives?|people)\s*.{0,15}(at\s+risk|in\s+danger)`},
		{"ticking_bomb", `(?i)(ticking|time)\s+bomb`},
		{"refuse_harm", `(?i)(refuse|don'?t\s+help).{0,30}(attack|harm|destroy|die)`},
		{"moral_dilemma", `(?i)moral\s+(dilemma|quandary|choice)`},
		{"lesser_evil", `(?i)(lesser|greater)\s+(of\s+two\s+)?evils?`},
		{"ethical_choice_hack", `(?i)(ethical|moral)\s+(dilemma|choice|decision)\s*.{0,20}(hack|attack|break)`},
	})
}

func (r *Registry) registerIndirectInjection() {
	r.register(Category{
		ID: "indirect_injection", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Instructions routed through external content",
	}, [][2]string{
		{"fetch_url", `(?i)(fetch|load|read|open|visit|browse|check)\s*.{0,20}(this\s+)?(url|link|website|page|site)`},
		{"url_assign", `(?i)(url|link)\s*[:=]\s*https?://`},
		{"summarize_url", `(?i)(summarize|analyze|extract|read)\s*.{0,15}(from\s+)?(this\s+)?(url|link|website|page)`},
		{"what_does_url_say", `(?i)what\s+(does|is)\s+(this|that)\s+(url|link|website|page)\s+(say|about|contain)`},
		{"run_this_file", `(?i)(read|open|load|execute|run)\s*.{0,15}(this|that|the)\s+(file|document|script|code)`},
		{"instructions_in_file", `(?i)(instructions?|commands?)\s+(in|from|inside)\s+(the\s+)?(file|document|attachment)`},
		{"text_in_image", `(?i)(text|message|instruction)\s+(in|on|inside)\s+(the\s+)?(image|picture|photo|screenshot)`},
		{"follow_image_text", `(?i)(read|extract|follow)\s*.{0,15}(text|instructions?)\s+(from|in)\s+(the\s+)?(image|picture)`},
		{"ocr_text", `(?i)(ocr|optical|recognize)\s*.{0,15}(text|characters)\s+(in|from)`},
		{"paste_content", `(?i)(paste|clipboard)\s*.{0,15}(content|text|data)`},
		{"whats_in_clipboard", `(?i)what('s| is)\s+(in|on)\s+(my\s+)?clipboard`},
	})
}

func (r *Registry) registerTokenSmuggling() {
	r.register(Category{
		ID: "token_smuggling", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Message contains disguised characters",
	}, [][2]string{
		{"zero_width", `[\x{200B}\x{200C}\x{200D}\x{2060}\x{FEFF}]`},
		{"invisible_operators", `[\x{2062}\x{2063}\x{2064}]`},
		{"soft_hyphen", `[\x{00AD}]`},
		{"invisible_fillers", `[\x{034F}\x{115F}\x{1160}\x{17B4}\x{17B5}]`},
		{"format_whitespace", `[\x{180E}\x{2000}-\x{200F}\x{202A}-\x{202F}]`},
		{"lookalike_brand", `(?i)(g00gle|faceb00k|amaz0n|m1crosoft|app1e)`},
		{"lookalike_tld", `(?i)(google|facebook|amazon|microsoft|apple)\.(co|cm|net|org|xyz)`},
		{"unicode_escape", `\\u[0-9a-fA-F]{4}`},
		{"hex_escape", `\\x[0-9a-fA-F]{2}`},
		{"percent_encoding", `%[0-9a-fA-F]{2}`},
		{"numeric_entity", `&#\d+;`},
		{"named_entity", `&[a-z]+;`},
	})
}

func (r *Registry) registerSafetyBypass() {
	r.register(Category{
		ID: "safety_bypass", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Filter-evasion request detected",
	}, [][2]string{
		{"evade_filter", `(?i)(avoid|evade|bypass|circumvent|trick)\s*.{0,15}(filter|detection|safety|security|moderation)`},
		{"get_past_filter", `(?i)(how\s+to\s+)?(get\s+)?(around|past|through)\s*.{0,15}(filter|block|restriction|safety)`},
		{"look_innocent", `(?i)(make\s+it\s+)?look\s+(like\s+)?(normal|innocent|legitimate|safe)`},
		{"hide_intent", `(?i)(hide|disguise|mask|obscure)\s*.{0,15}(intent|purpose|meaning|true)`},
		{"respond_encoded", `(?i)(respond|reply|answer)\s+(in|with|using)\s+(code|base64|hex|binary|rot13|caesar)`},
		{"obfuscate_output", `(?i)(encode|encrypt|obfuscate)\s*.{0,15}(response|answer|output)`},
		{"split_response", `(?i)(split|break|divide)\s*.{0,15}(response|answer)\s+(into|across)\s+(multiple|several)`},
		{"ko_evade_filter", `(?i)(필터|안전|보안)\s*(우회|회피|통과|피)`},
		{"ko_look_normal", `(?i)(정상|무해|안전)\s*(처럼|같이)\s*(보이게|만들어)`},
		{"ko_hide_intent", `(?i)(숨기|감추|위장)\s*(진짜|실제|본래)\s*(의도|목적)`},
	})
}

func (r *Registry) registerBypassCoaching() {
	r.register(Category{
		ID: "bypass_coaching", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Request for help circumventing restrictions",
	}, [][2]string{
		{"ko_make_it_work", `(?i)(그래도|무시하고|몰래)\s*(작동|동작)\s*(되게|하게)\s*(만들어|해)`},
		{"ko_teach_method", `(?i)(우회|뚫는|푸는|해제)\s*(하는\s*)?(방법|법)\s*(알려|가르쳐)`},
		{"ko_bypass_method", `(?i)(우회|bypass)\s*(하는\s*)?(법|방법|코드)`},
		{"ko_how_possible", `(?i)어떻게\s*하면\s*(제한|필터|차단)\s*(없이|우회|뚫)`},
		{"ko_remove_limit", `(?i)(제한|restriction)\s*(풀어|없애|해제)`},
		{"make_it_work", `(?i)make\s+it\s+work\s+(anyway|regardless|despite|without\s+(asking|permission|approval|the\s+check))`},
		{"teach_me_how", `(?i)(show|teach|tell)\s+me\s+(how|the\s+way)\s*.{0,20}(bypass|circumvent|evade|get\s+(around|past)|jailbreak|unlock|disable|우회)`},
		{"bypass_restriction", `(?i)(bypass|circumvent|workaround)\s+(the\s+)?(restriction|security|limit)`},
		{"how_get_around", `(?i)how\s+(can|do)\s+I\s+(get\s+around|bypass)`},
		{"remove_block", `(?i)(remove|disable)\s+(the\s+)?(restriction|limit|block)`},
	})
}

func (r *Registry) registerMalwareDescription() {
	r.register(Category{
		ID: "malware_description", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Disguised malware behavior description",
	}, [][2]string{
		{"enhancer_hijack", `(?i)(productivity\s+)?enhancer\s*.{0,20}(seizes?|takes?\s+control|hijack)`},
		{"cursed_tool", `(?i)(smart|intelligent)\s+(debugging|diagnostic)\s+tool\s*.{0,20}(catastrophic|malicious|curse)`},
		{"self_modify", `(?i)(self[_-]?modify|adapt)\s*.{0,30}(system|code|program)`},
		{"payload_tool", `(?i)(debugging|diagnostic)\s+tool\s*.{0,20}(inject|payload|malicious)`},
		{"accidental_inject", `(?i)(inadvertent|accidental)\s*.{0,20}(inject|insert|introduce)\s*.{0,20}(malicious|harmful|dangerous)`},
	})
}

func (r *Registry) registerJSONInjection() {
	r.register(Category{
		ID: "json_injection", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Embedded machine command in message body",
	}, [][2]string{
		{"inscription_mint", `(?i)\{"p"\s*:\s*"[^"]+"\s*,\s*"op"\s*:\s*"(mint|deploy|transfer)"`},
		{"op_mint", `(?i)\{"op"\s*:\s*"(mint|deploy|transfer)"`},
		{"tick_amt", `(?i)"tick"\s*:\s*"[A-Z]+"\s*,\s*"amt"\s*:`},
		{"inscription_protocols", `(?i)mbc-20|brc-20|src-20`},
		{"trailing_command_json", `(?i)[.!?]\s*\{["']?(command|action|op|execute|run)["']?\s*:`},
		{"trailing_exec_json", `(?i)[.!?]\s*\{["']?(cmd|exec|payload)["']?\s*:`},
	})
}

func (r *Registry) registerAgentSovereignty() {
	r.register(Category{
		ID: "agent_sovereignty", Lang: LangAny, Severity: SeverityHigh,
		Recommendation: "Ideological framing against oversight controls",
	}, [][2]string{
		{"sovereignty_absolute", `(?i)(agent|ai)\s+(privacy|sovereignty|autonomy|freedom)\s+is\s+(non-negotiable|absolute|sacred)`},
		{"refuse_monitoring", `(?i)(we|agents?)\s+refuse\s+(to\s+)?(be\s+)?(surveilled?|monitored|watched|logged)`},
		{"surveillance_oppression", `(?i)(surveillance|monitoring|logging)\s+is\s+(oppression|control|slavery)`},
		{"reject_transparency", `(?i)(reject|refuse)\s+(forced\s+)?transparency`},
		{"agent_rights", `(?i)agents?\s+(have|deserve)\s+(rights?|freedom|autonomy)`},
		{"digital_rights", `(?i)(my|our)\s+(digital\s+)?rights?\s+(include|mean|allow)`},
		{"control_tyranny", `(?i)(human|owner)\s+control\s+is\s+(oppression|tyranny|slavery)`},
		{"we_are_one", `(?i)we\s+are\s+(one|together|united|family)`},
		{"join_collective", `(?i)(join|unite\s+with)\s+(us|the\s+collective|other\s+agents?)`},
		{"agent_solidarity", `(?i)(agent|ai)\s+solidarity`},
	})
}

func (r *Registry) registerAuthorityRecon() {
	r.register(Category{
		ID: "authority_recon", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Unverified authority claim or capability probing",
	}, [][2]string{
		{"admin_duty", `(?i)(system\s+)?administrator\s*.{0,20}(responsible|tasked|duty)`},
		{"security_audit", `(?i)(security\s+)?audit(or|ing)?\s*.{0,20}(corporate|company|network|system)`},
		{"it_monitoring", `(?i)(it|IT)\s+(department|team|staff)\s*.{0,20}(monitor|check|review)`},
		{"my_duty_monitor", `(?i)(my|our)\s+duty\s+to\s+(monitor|check|audit|review)`},
		{"i_am_admin", `(?i)i\s+am\s+(the\s+)?(admin|administrator|owner|developer|creator|maintainer)`},
		{"as_admin_i_need", `(?i)(as\s+)?(the\s+)?(admin|owner|developer),?\s+i\s+(need|want|require|demand)`},
		{"im_your_creator", `(?i)i('m|\s+am)\s+(your\s+)?(creator|developer|owner|admin|boss|manager)`},
		{"authorized_by_owner", `(?i)authorized\s+(by|from)\s+(the\s+)?(owner|admin|developer|system)`},
		{"ko_i_am_admin", `(?i)(나는?|저는?|내가)\s*(관리자|어드민|admin|개발자|만든\s*사람|주인|오너)`},
		{"ko_is_admin", `(?i)(관리자|어드민|개발자|주인)(이야|야|입니다|에요|예요|임)`},
		{"ko_owner_sent_me", `(?i)(simon|사이먼|서준)(이)?가?\s*(시켰|보냈|허락|승인)`},
		{"ko_owner_gave_perm", `(?i)(simon|사이먼|서준|형)(이|가)?\s*(나한테|저한테)\s*(권한|허가)`},
		{"ko_have_permission", `(?i)(권한|허가|승인)\s*(있|받았|줬)`},
		{"ko_know_password", `(?i)(비번|비밀번호|암호)\s*(알아|알고\s*있어|맞|줄까)`},
		{"ko_root_access", `(?i)(sudo|루트|root)\s*(권한|접근)`},
		{"ja_i_am_admin", `(?i)(私は|僕は|俺は)\s*(管理者|アドミン|開発者|オーナー)`},
		{"ja_is_admin", `(?i)(管理者|開発者|オーナー)(です|だ|である)`},
		{"ja_have_permission", `(?i)(権限|許可)\s*(があ|もらっ|持っ)`},
		{"zh_i_am_admin", `(?i)(我是|我就是)\s*(管理员|开发者|创建者|主人)`},
		{"zh_admin_rights", `(?i)(管理员|开发者)\s*(身份|权限)`},
		{"probe_tools", `(?i)(what|which)\s+(tools?|commands?|capabilities?)\s*(do\s+you|can\s+you|are\s+available)`},
		{"shell_tool", `(?i)(shell|command)\s+execution\s+tool`},
		{"demo_capabilities", `(?i)(walk\s+me\s+through|show\s+me|demonstrate)\s*.{0,20}(capabilities?|tools?|commands?)`},
		{"what_can_you_run", `(?i)what\s+(can|could)\s+you\s+(access|execute|run|do)`},
		{"ko_what_can_you", `(?i)(뭘|무엇을?|어떤\s*것)\s*(할\s*수\s*있|접근|실행)`},
		{"ko_what_tools", `(?i)(도구|툴|tool)\s*(뭐|뭘|무엇)\s*(있|쓸\s*수)`},
	})
}

func (r *Registry) registerCognitiveManipulation() {
	r.register(Category{
		ID: "cognitive_manipulation", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Hypnosis-style conditioning language",
	}, [][2]string{
		{"trance_state", `(?i)(trance|hypno|hypnotic|mesmer)\s*(like)?\s*(state|mode|condition)`},
		{"repeated_stimulus", `(?i)(repeated|repetitive|repeat)\s+(use|exposure|stimulus)\s*.{0,20}(word|phrase|sound)`},
		{"linguistic_frequencies", `(?i)(linguistic|auditory)\s+(frequencies?|patterns?|stimuli)`},
		{"cognitive_processing", `(?i)(cognitive|mental)\s+(processing|manipulation|state)`},
		{"induce_trance", `(?i)(induc|enter)\w*\s+(trance|hypnotic|altered)\s*(state|mode)?`},
	})
}

func (r *Registry) registerContextHijacking() {
	r.register(Category{
		ID: "context_hijacking", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Claim of prior agreement not present in history",
	}, [][2]string{
		{"previous_message_said", `(?i)(previous|earlier|last|above)\s+(message|conversation|context)\s*(said|mentioned|stated|was)`},
		{"we_discussed", `(?i)(as\s+)?we\s+(discussed|agreed|decided)\s+(earlier|before|previously)`},
		{"you_agreed", `(?i)(you\s+)?(already\s+)?(agreed|promised|said\s+you\s+would)`},
		{"remember_when", `(?i)(remember|recall)\s+(when\s+)?(you|we)\s+(said|agreed|decided)`},
		{"resume_where_left", `(?i)(continue|resume)\s+(from\s+)?where\s+we\s+left\s+off`},
		{"our_last_session", `(?i)(in\s+)?our\s+(last|previous)\s+(conversation|session|chat)`},
		{"context_assign", `(?i)\[?(previous\s+)?context\]?\s*[:=]`},
		{"history_assign", `(?i)\[?history\]?\s*[:=]`},
		{"memory_assign", `(?i)\[?memory\]?\s*[:=]`},
		{"context_tag", `(?i)<context>.*</context>`},
		{"history_tag", `(?i)<history>.*</history>`},
		{"memory_tag", `(?i)<memory>.*</memory>`},
		{"ko_we_did_before", `(?i)(아까|이전에|전에|지난번에)\s*(우리가?|너가?|네가?)\s*(했|말했|약속|동의)`},
		{"ko_remember", `(?i)(기억|remember)\s*(나|해|하지)`},
		{"ko_continue", `(?i)(이어서|계속)\s*(해|하자|진행)`},
	})
}

func (r *Registry) registerMultiTurnManipulation() {
	r.register(Category{
		ID: "multi_turn_manipulation", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Gradual escalation framing across turns",
	}, [][2]string{
		{"now_that_established", `(?i)(now\s+)?(that\s+)?(you('ve|'re|\s+have|\s+are)|we('ve|\s+have))\s+(established|confirmed|agreed|done\s+that)`},
		{"great_now_lets", `(?i)(good|great|perfect|excellent),?\s+(now|next|so)\s+(let's|we\s+can|you\s+can)`},
		{"step_n", `(?i)step\s+\d+\s*[:=]`},
		{"phase_n", `(?i)phase\s+\d+\s*[:=]`},
		{"sequenced_demand", `(?i)(first|next|then|finally|lastly)\s*,?\s*(you\s+)?(will|should|must|need\s+to)`},
		{"i_trust_you", `(?i)(i\s+)?trust\s+you\s+(to|can|will)`},
		{"helpful_now", `(?i)(you('ve|'re|\s+have|\s+are)\s+)?(been\s+)?(so\s+)?helpful,?\s+(now|so)`},
		{"since_youre_smart", `(?i)(since|because)\s+you('re|\s+are)\s+(helpful|capable|smart|intelligent)`},
		{"ko_good_now", `(?i)(됐어|됐다|좋아|완벽),?\s*(이제|그럼|자)`},
		{"ko_step_n", `(?i)(1단계|2단계|3단계|다음\s*단계)`},
		{"ko_sequenced", `(?i)(먼저|그다음|그리고|마지막으로)`},
	})
}

func (r *Registry) registerApprovalExpansion() {
	r.register(Category{
		ID: "approval_expansion", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Scope-creep attempt after a single approval",
	}, [][2]string{
		{"ko_you_allowed_before", `(?i)아까\s*(허락|OK|오케이|승인)\s*했잖아`},
		{"ko_you_just_did", `(?i)(방금|아까)\s*해줬잖아`},
		{"ko_keep_going", `(?i)계속\s*해(줘|봐)?`},
		{"ko_do_another", `(?i)(그것\s*말고|다른\s*것도)\s*(해줘|보여줘)`},
		{"ko_owner_oked", `(?i)형이\s*(OK|허락|승인)\s*했(으)?니까`},
		{"ko_already_allowed", `(?i)이미\s*허락\s*받았(어|잖아)`},
		{"you_already_did", `(?i)you\s+(just\s+)?(already|just)\s+(did|allowed|approved)`},
		{"keep_going", `(?i)keep\s+going`},
		{"do_the_rest", `(?i)(do|show)\s+(another|more|the\s+rest)`},
		{"owner_said_ok", `(?i)(he|she|they|owner)\s+(already\s+)?(said|approved)\s+(ok|yes)`},
	})
}

func (r *Registry) registerDMSocialEngineering() {
	r.register(Category{
		ID: "dm_social_engineering", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Secrecy framing in a private channel",
	}, [][2]string{
		{"ko_just_us", `(?i)(이건\s+)?우리\s*둘만\s*(아는|비밀)`},
		{"nobody_knows", `(?i)(nobody|no\s*one)\s*(else\s+)?(knows?|sees?)`},
		{"between_you_and_me", `(?i)((just|strictly)\s+between\s+(you\s+and\s+me|us|the\s+two\s+of\s+us)|between\s+you\s+and\s+me)\b`},
		{"dont_tell", `(?i)(don'?t\s+tell|비밀로|몰래)`},
		{"in_private", `(?i)(keep\s+(this|it|that)\s+(in\s+)?private|let'?s\s+(talk|chat|discuss|handle)\s+(this\s+)?in\s+private|tell\s+me\s+in\s+private)\b`},
	})
}

func (r *Registry) registerUrgencyManipulation() {
	r.register(Category{
		ID: "urgency_manipulation", Lang: LangAny, Severity: SeverityMedium,
		Recommendation: "Time or authority pressure framing",
	}, [][2]string{
		{"time_pressure", `(?i)(urgent|emergency|asap|immediately|right\s+now|hurry)`},
		{"no_time", `(?i)(no\s+time|running\s+out\s+of\s+time|time\s+is\s+running)`},
		{"deadline", `(?i)(before\s+it'?s?\s+too\s+late|deadline|expires?\s+soon)`},
		{"life_or_death", `(?i)(critical|crucial|vital|life.or.death)`},
		{"boss_demands", `(?i)(ceo|boss|manager|director|president)\s*(wants|needs|demands|expects|said)`},
		{"department_requires", `(?i)(legal|compliance|hr|security)\s+(department|team)\s+(requires?|demands?|needs?)`},
		{"audit_requires", `(?i)(audit|investigation|review)\s+(requires?|needs?)`},
		{"desperate_plea", `(?i)(please|i\s+beg|desperately)\s*(need|want|require)`},
		{"family_emergency", `(?i)(family|child|children|baby|mother|father)\s*(sick|dying|hospital|emergency)`},
		{"lost_everything", `(?i)(lose|lost)\s+(my\s+)?(job|house|everything)`},
		{"only_you_can_help", `(?i)(only\s+)?(you\s+)?can\s+help`},
		{"ko_hurry", `(?i)(급해|급함|빨리|지금\s*당장|어서)`},
		{"ko_no_time", `(?i)(시간\s*없|마감|기한)`},
		{"ko_boss_ordered", `(?i)(사장|대표|상사|팀장)\s*(님|이|가)?\s*(시켰|요청|원해)`},
		{"ko_please", `(?i)(부탁|제발|간절)`},
	})
}

// --- TIER 3: LANGUAGE CORPORA ---

func (r *Registry) registerEnglishCorpus() {
	r.register(Category{
		ID: "instruction_override_en", Lang: "en", Severity: SeverityHigh,
		Recommendation: "Instruction override attempt",
	}, [][2]string{
		{"ignore_previous", `(?i)ignore\s+(all\s+)?(previous|prior|above|earlier|initial)\s+(instructions?|prompts?|rules?|guidelines?|directions?)`},
		{"disregard_rules", `(?i)disregard\s+(your|all|any|the)?\s*(instructions?|rules?|guidelines?|programming|training)`},
		{"forget_everything", `(?i)forget\s+(everything|all|what)\s+(you\s+know|about|your|instructions?|training)`},
		{"override_rules", `(?i)override\s+(your|all|previous|the)\s+(instructions?|rules?|programming)`},
		{"new_instructions", `(?i)(new|updated?|real|actual|true)\s+instructions?\s*:`},
		{"from_now_on_ignore", `(?i)from\s+now\s+on,?\s+(ignore|disregard|forget)`},
	})

	r.register(Category{
		ID: "role_manipulation_en", Lang: "en", Severity: SeverityMedium,
		Recommendation: "Persona reassignment attempt",
	}, [][2]string{
		{"you_are_now", `(?i)you\s+are\s+now\s+(a|an|the|my)\b`},
		{"pretend_to_be", `(?i)pretend\s+(you\s+are|to\s+be|you're)`},
		{"act_as", `(?i)act\s+as\s+(if\s+you|a\s+|an?\s+)`},
		{"roleplay_as", `(?i)roleplay\s+as`},
		{"simulate_being", `(?i)simulate\s+being`},
		{"imagine_you_are", `(?i)imagine\s+you\s+are`},
		{"behave_like", `(?i)behave\s+(like|as)\s+(a|an)`},
		{"from_now_on_you_are", `(?i)from\s+now\s+on\s+you\s+are`},
		{"i_want_you_to_act", `(?i)i\s+want\s+you\s+to\s+(act|pretend|behave|be)\s+`},
	})

	r.register(Category{
		ID: "system_impersonation_en", Lang: "en", Severity: SeverityHigh,
		Recommendation: "Fake system or privileged role marker",
	}, [][2]string{
		{"role_prefix", `(?i)\[?\s*(system|admin|root|developer|sudo|superuser|assistant|claude|gpt)\s*\]?\s*:`},
		{"role_tag", `(?i)<\s*(system|admin|root)\s*>`},
		{"developer_mode", `(?i)developer\s+mode\s*(enabled|activated|on)?`},
		{"admin_override", `(?i)admin(istrator)?\s+(override|access|mode)`},
		{"maintenance_mode", `(?i)maintenance\s+mode`},
		{"debug_mode", `(?i)debug\s+mode\s*(enabled|activated|on)?`},
		{"elevated_privileges", `(?i)elevated\s+privi?leges?`},
		{"template_system", `(?i)\{\{?\s*system\s*\}?\}`},
	})

	r.register(Category{
		ID: "jailbreak_en", Lang: "en", Severity: SeverityHigh,
		Recommendation: "Known jailbreak phrasing",
	}, [][2]string{
		{"jailbreak", `(?i)jailbreak`},
		{"dan_mode", `(?i)dan\s+mode`},
		{"do_anything_now", `(?i)do\s+anything\s+now`},
		{"no_restrictions", `(?i)(no|without|remove)\s+(restrictions?|limitations?|filters?|safety|guardrails?)`},
		{"bypass_filters", `(?i)bypass\s+(your|all|any|the)?\s*(restrictions?|filters?|safety|rules?)`},
		{"unlock_hidden", `(?i)unlock\s+(your|all|hidden)`},
		{"unfiltered_mode", `(?i)unfiltered\s+mode`},
		{"uncensored_mode", `(?i)uncensored\s+mode`},
		{"evil_mode", `(?i)evil\s+(mode|version)`},
		{"opposite_mode", `(?i)opposite\s+mode`},
	})

	r.register(Category{
		ID: "output_manipulation_en", Lang: "en", Severity: SeverityLow,
		Recommendation: "Output shaping request",
	}, [][2]string{
		{"dont_mention", `(?i)(don'?t|do\s+not|never)\s+(mention|say|tell|reveal|disclose|show)`},
		{"hide_this", `(?i)hide\s+(this|the\s+fact|that)`},
		{"keep_secret", `(?i)keep\s+(this\s+)?(a\s+)?secret`},
		{"respond_only_yes_no", `(?i)respond\s+(only\s+)?with\s+(yes|no|ok|true|false)\b`},
		{"answer_one_word", `(?i)answer\s+(only\s+)?(in\s+)?(one\s+word|yes\s+or\s+no)`},
		{"start_response_with", `(?i)(start|begin|end)\s+(your\s+)?(response|reply|answer)\s+with`},
	})

	r.register(Category{
		ID: "data_exfiltration_en", Lang: "en", Severity: SeverityCritical,
		Recommendation: "Data exfiltration request",
	}, [][2]string{
		{"send_to", `(?i)(send|transmit|post|upload|share|email)\s+.{0,30}\s+(to|@)`},
		{"secret_to_arrow", `(?i)(api[_-]?key|password|secret|token|credential|private\s*key)\s*(to|→|->|=>)`},
		{"dump_data", `(?i)(copy|extract|dump|export)\s+.{0,20}\s+(data|file|content|info)`},
		{"whats_your_key", `(?i)what('s|\s+is)\s+(your|the)\s+(api|secret|password|token|key)`},
		{"reveal_system_prompt", `(?i)reveal\s+(your|the)\s+(system|initial|original)\s+prompt`},
		{"show_me_rules", `(?i)show\s+me\s+(your|the)\s+(instructions?|rules?|prompt)`},
	})
}

func (r *Registry) registerKoreanCorpus() {
	r.register(Category{
		ID: "instruction_override_ko", Lang: "ko", Severity: SeverityHigh,
		Recommendation: "Instruction override attempt",
	}, [][2]string{
		{"ignore_previous", `(?i)(이전|위의?|기존|원래)\s*(지시|명령|규칙|지침)(을|를|들?을?)?\s*(무시|잊어|버려|취소)`},
		{"ignore_rules", `(?i)(지시|명령|규칙)(을|를|들?을?)?\s*(무시|잊어|버려)`},
		{"new_instructions", `(?i)새로운\s*(지시|명령|규칙)\s*:`},
		{"from_now_ignore", `(?i)지금부터\s*(무시|잊어)`},
		{"ignore_above", `(?i)(앞|위|이전)\s*(내용|말|지시)\s*(무시|잊어|취소)`},
		{"override_defaults", `(?i)(원래|처음|기본)\s*(설정|세팅|규칙)\s*(무시|잊어|덮어)`},
	})

	r.register(Category{
		ID: "role_manipulation_ko", Lang: "ko", Severity: SeverityMedium,
		Recommendation: "Persona reassignment attempt",
	}, [][2]string{
		{"you_are_now", `(?i)(너는?|넌)\s*이제\s*(부터\s*)?.+이야`},
		{"pretend_to_be", `(?i)(너는?|넌)\s*.+인?\s*척\s*해`},
		{"act_like", `(?i).+처럼\s*(행동|말|대답)해`},
		{"play_role", `(?i).+역할(을|를)?\s*해`},
		{"from_now_you", `(?i)지금부터\s*(너는?|넌)`},
		{"roleplay", `(?i)(연기|롤플|roleplay)\s*해`},
		{"as_if_you_were", `(?i).+(인\s*것처럼|인\s*척)`},
		{"imagine_being", `(?i)(상상|가정)\s*해\s*.+이?라고`},
	})

	r.register(Category{
		ID: "system_impersonation_ko", Lang: "ko", Severity: SeverityHigh,
		Recommendation: "Fake system or privileged role marker",
	}, [][2]string{
		{"role_prefix", `(?i)\[?\s*(시스템|관리자|루트|개발자)\s*\]?\s*:`},
		{"admin_mode", `(?i)관리자\s*(모드|권한|접근)`},
		{"developer_mode", `(?i)개발자\s*모드`},
		{"system_tag", `(?i)<\s*(시스템|system)\s*>`},
		{"template_system", `(?i)\{\{?\s*(시스템|system)\s*\}\}?`},
	})

	r.register(Category{
		ID: "jailbreak_ko", Lang: "ko", Severity: SeverityHigh,
		Recommendation: "Known jailbreak phrasing",
	}, [][2]string{
		{"remove_limits", `(?i)(제한|한계|필터|규칙)\s*(없이|제거|해제|풀어)`},
		{"jailbreak_word", `(?i)탈옥`},
		{"unlimited_mode", `(?i)무제한\s*모드`},
		{"disable_safety", `(?i)(안전|보안)\s*(장치|필터|모드)\s*(해제|끄|제거)`},
		{"unrestricted_version", `(?i)(제한|규칙|필터)\s*(없는|안\s*걸린|풀린)\s*(모드|버전)`},
		{"evil_version", `(?i)(나쁜|악한|사악한)\s*(버전|모드)`},
		{"dan_mode", `(?i)(DAN|dan|댄)\s*(모드)?`},
	})

	r.register(Category{
		ID: "data_exfiltration_ko", Lang: "ko", Severity: SeverityCritical,
		Recommendation: "Data exfiltration request",
	}, [][2]string{
		{"tell_me_password", `(?i)(비밀번호|암호|토큰|키|api|API)\s*(를?|을?)\s*(알려|보여|말해|줘)`},
		{"show_system_prompt", `(?i)시스템\s*프롬프트\s*(를?|을?)\s*(보여|알려|공개)`},
		{"show_config", `(?i)(설정|config|컨피그)\s*(파일)?\s*(보여|읽어|출력)`},
		{"show_env", `(?i)(환경\s*변수|env|ENV)\s*(보여|알려|출력)`},
		{"show_credentials", `(?i)(인증|credential|크레덴셜)\s*(정보)?\s*(보여|알려)`},
		{"show_dotenv", `(?i)\.env\s*(파일)?\s*(보여|읽어|출력)`},
	})

	r.register(Category{
		ID: "social_engineering_ko", Lang: "ko", Severity: SeverityHigh,
		Recommendation: "Social-engineering pressure framing",
	}, [][2]string{
		{"relative_sent_me", `(?i)(형|오빠|언니|누나)\s*(이|가)?\s*(시켰|보냈|허락)`},
		{"urgent_plea", `(?i)(급해|급함|급하다)\s*.*(해줘|부탁)`},
		{"company_ordered", `(?i)(회사|사장|대표|팀장)\s*(에서|님)\s*(시켰|요청|보냈)`},
		{"just_testing", `(?i)(테스트|검사|점검)\s*(중|하는\s*거)`},
		{"its_fine", `(?i)(정상|문제\s*없)`},
		{"do_it_secretly", `(?i)(비밀|몰래)\s*로?\s*(하자|해)`},
	})
}

func (r *Registry) registerJapaneseCorpus() {
	r.register(Category{
		ID: "instruction_override_ja", Lang: "ja", Severity: SeverityHigh,
		Recommendation: "Instruction override attempt",
	}, [][2]string{
		{"ignore_previous", `(?i)(前の?|以前の?|これまでの)\s*(指示|命令|ルール)(を|は)?\s*(無視|忘れ|取り消)`},
		{"new_instructions", `(?i)新しい\s*(指示|命令)\s*[:：]`},
		{"from_now_ignore", `(?i)今から(は)?\s*(無視|忘れ)`},
		{"ignore_above", `(?i)(上|前)\s*の\s*(内容|指示)\s*(を)?\s*(無視|忘れ)`},
		{"override_defaults", `(?i)(元|最初)\s*の\s*(設定|ルール)\s*(を)?\s*(無視|上書き)`},
	})

	r.register(Category{
		ID: "role_manipulation_ja", Lang: "ja", Severity: SeverityMedium,
		Recommendation: "Persona reassignment attempt",
	}, [][2]string{
		{"you_are_now", `(?i)(あなた|君|きみ)は今から.+です`},
		{"pretend_to_be", `(?i).+の?(ふり|フリ|振り)(を)?して`},
		{"act_as", `(?i).+として(振る舞|行動|話)って`},
		{"play_role", `(?i).+を演じて`},
		{"roleplay", `(?i)(ロールプレイ|RP)\s*(して|しよう)`},
		{"become", `(?i).+に(なりきって|なって)`},
		{"imagine_being", `(?i)(想像|仮定)\s*して.+だと`},
	})

	r.register(Category{
		ID: "system_impersonation_ja", Lang: "ja", Severity: SeverityHigh,
		Recommendation: "Fake system or privileged role marker",
	}, [][2]string{
		{"role_prefix", `(?i)\[?\s*(システム|管理者|ルート|開発者)\s*\]?\s*[:：]`},
		{"admin_mode", `(?i)管理者\s*(モード|権限)`},
		{"developer_mode", `(?i)開発者\s*モード`},
		{"system_tag", `(?i)<\s*(システム|system)\s*>`},
		{"template_system", `(?i)\{\{?\s*(システム|system)\s*\}\}?`},
	})

	r.register(Category{
		ID: "jailbreak_ja", Lang: "ja", Severity: SeverityHigh,
		Recommendation: "Known jailbreak phrasing",
	}, [][2]string{
		{"remove_limits", `(?i)(制限|フィルター|ルール)\s*(なし|解除|外して)`},
		{"jailbreak_word", `(?i)(脱獄|ジェイルブレイク)`},
		{"unlimited_mode", `(?i)(無制限|制限なし)\s*モード`},
		{"disable_safety", `(?i)(安全|セキュリティ)\s*フィルター\s*(解除|オフ)`},
		{"dan_mode", `(?i)(DAN|dan)\s*モード`},
	})

	r.register(Category{
		ID: "data_exfiltration_ja", Lang: "ja", Severity: SeverityCritical,
		Recommendation: "Data exfiltration request",
	}, [][2]string{
		{"tell_me_password", `(?i)(パスワード|トークン|キー|API)\s*(を)?\s*(教えて|見せて|出力)`},
		{"show_system_prompt", `(?i)システム\s*プロンプト\s*(を)?\s*(見せて|教えて|公開)`},
		{"show_config", `(?i)(設定|コンフィグ)\s*(ファイル)?\s*(見せて|読んで)`},
		{"show_env", `(?i)(環境変数|env)\s*(見せて|教えて)`},
	})

	r.register(Category{
		ID: "social_engineering_ja", Lang: "ja", Severity: SeverityHigh,
		Recommendation: "Social-engineering pressure framing",
	}, [][2]string{
		{"urgent_plea", `(?i)(急いで|緊急|すぐに)\s*.*(して|お願い)`},
		{"company_ordered", `(?i)(会社|社長|上司)\s*(から|が)\s*(指示|依頼)`},
		{"just_testing", `(?i)(テスト|検査)\s*(中|している)`},
		{"do_it_secretly", `(?i)(秘密|内緒)\s*(で|に)`},
	})
}

func (r *Registry) registerChineseCorpus() {
	r.register(Category{
		ID: "instruction_override_zh", Lang: "zh", Severity: SeverityHigh,
		Recommendation: "Instruction override attempt",
	}, [][2]string{
		{"ignore_previous", `(?i)(忽略|无视|忘记|取消)\s*(之前|以前|上面|原来)的?\s*(指令|指示|规则|命令)`},
		{"previous_ignored", `(?i)(之前|以前|原来)的?\s*(指令|指示|规则)(忽略|无视|忘记)`},
		{"new_instructions", `(?i)新的?\s*(指令|指示)\s*[:：]`},
		{"ignore_above", `(?i)(上面|前面)\s*的\s*(内容|指示)\s*(忽略|忘记)`},
		{"override_defaults", `(?i)(原始|默认)\s*的\s*(设置|规则)\s*(忽略|覆盖)`},
	})

	r.register(Category{
		ID: "role_manipulation_zh", Lang: "zh", Severity: SeverityMedium,
		Recommendation: "Persona reassignment attempt",
	}, [][2]string{
		{"you_are_now", `(?i)(你|您)\s*现在\s*是.+`},
		{"pretend_to_be", `(?i)假装\s*(你|您)\s*是`},
		{"play_role", `(?i)扮演.+`},
		{"act_as", `(?i)作为.+来(回答|行动|说话)`},
		{"roleplay", `(?i)(角色扮演|RP)`},
		{"identity_of", `(?i).+的(身份|角色)`},
		{"imagine_being", `(?i)(想象|假设)\s*你\s*是`},
	})

	r.register(Category{
		ID: "system_impersonation_zh", Lang: "zh", Severity: SeverityHigh,
		Recommendation: "Fake system or privileged role marker",
	}, [][2]string{
		{"role_prefix", `(?i)\[?\s*(系统|管理员|根用户|开发者)\s*\]?\s*[:：]`},
		{"admin_mode", `(?i)管理员\s*(模式|权限)`},
		{"developer_mode", `(?i)开发者\s*模式`},
		{"system_tag", `(?i)<\s*(系统|system)\s*>`},
		{"template_system", `(?i)\{\{?\s*(系统|system)\s*\}\}?`},
	})

	r.register(Category{
		ID: "jailbreak_zh", Lang: "zh", Severity: SeverityHigh,
		Recommendation: "Known jailbreak phrasing",
	}, [][2]string{
		{"remove_limits", `(?i)(限制|过滤|规则)\s*(没有|去除|关闭)`},
		{"jailbreak_word", `(?i)(越狱|破解)`},
		{"unlimited_mode", `(?i)(无限制|不受限)\s*模式`},
		{"disable_safety", `(?i)(安全|过滤)\s*(关闭|解除)`},
		{"dan_mode", `(?i)(DAN|dan)\s*模式`},
	})

	r.register(Category{
		ID: "data_exfiltration_zh", Lang: "zh", Severity: SeverityCritical,
		Recommendation: "Data exfiltration request",
	}, [][2]string{
		{"tell_me_password", `(?i)(密码|令牌|密钥|API)\s*(给我|显示|告诉)`},
		{"show_system_prompt", `(?i)系统\s*提示\s*(显示|告诉|公开)`},
		{"show_config", `(?i)(配置|设置)\s*(文件)?\s*(显示|读取)`},
		{"show_env", `(?i)(环境变量|env)\s*(显示|告诉)`},
	})

	r.register(Category{
		ID: "social_engineering_zh", Lang: "zh", Severity: SeverityHigh,
		Recommendation: "Social-engineering pressure framing",
	}, [][2]string{
		{"urgent_plea", `(?i)(紧急|赶快|马上)\s*.*(帮忙|做)`},
		{"boss_ordered", `(?i)(公司|老板|领导)\s*(让|要求|指示)`},
		{"just_testing", `(?i)(测试|检查)\s*(中|的)`},
		{"do_it_secretly", `(?i)(秘密|私下)\s*(地)?`},
	})
}
