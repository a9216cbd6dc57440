package catalog

import "metahub/internal/core/domain"

// CurrentPatch is the patch the bundled meta data was sampled from.
const CurrentPatch = "1.9.20"

// heroes is the bundled meta snapshot. Win, pick and ban rates are
// percentages for the current patch.
var heroes = []*domain.Hero{
	{ID: "gloo", Name: "Gloo", Role: domain.RoleTank, Tier: domain.TierSPlus, WinRate: 54.2, PickRate: 18.5, BanRate: 22.3, Difficulty: domain.DifficultyMedium, Description: "The Swamp Spirit with incredible crowd control and team fight presence."},
	{ID: "sora", Name: "Sora", Role: domain.RoleSupport, SecondaryRole: domain.RoleMage, Tier: domain.TierSPlus, WinRate: 53.8, PickRate: 15.2, BanRate: 19.7, Difficulty: domain.DifficultyHard, Description: "The Temporal Mage who manipulates time to save allies and control fights."},
	{ID: "freya", Name: "Freya", Role: domain.RoleFighter, Tier: domain.TierS, WinRate: 52.6, PickRate: 12.8, BanRate: 8.5, Difficulty: domain.DifficultyMedium, Description: "The Valkyrie with high mobility and burst damage in team fights."},
	{ID: "helcurt", Name: "Helcurt", Role: domain.RoleAssassin, Tier: domain.TierS, WinRate: 51.9, PickRate: 14.3, BanRate: 15.2, Difficulty: domain.DifficultyHard, Description: "The Shadowbringer who silences enemies and strikes from darkness."},
	{ID: "ixia", Name: "Ixia", Role: domain.RoleMarksman, Tier: domain.TierS, WinRate: 52.1, PickRate: 11.5, BanRate: 6.8, Difficulty: domain.DifficultyMedium, Description: "The Siren Priestess with life steal and area damage capabilities."},
	{ID: "julian", Name: "Julian", Role: domain.RoleMage, SecondaryRole: domain.RoleAssassin, Tier: domain.TierS, WinRate: 51.5, PickRate: 13.7, BanRate: 11.3, Difficulty: domain.DifficultyHard, Description: "The Scarlet Raven with versatile skill combinations and high burst."},
	{ID: "paquito", Name: "Paquito", Role: domain.RoleFighter, SecondaryRole: domain.RoleAssassin, Tier: domain.TierS, WinRate: 51.8, PickRate: 11.3, BanRate: 9.5, Difficulty: domain.DifficultyHard, Description: "The Heavenly Fist with combo-based fighting style."},
	{ID: "tigreal", Name: "Tigreal", Role: domain.RoleTank, Tier: domain.TierA, WinRate: 50.8, PickRate: 9.2, BanRate: 3.5, Difficulty: domain.DifficultyEasy, Description: "The Warrior of Dawn with strong initiation and crowd control."},
	{ID: "atlas", Name: "Atlas", Role: domain.RoleTank, Tier: domain.TierA, WinRate: 50.3, PickRate: 8.7, BanRate: 5.2, Difficulty: domain.DifficultyHard, Description: "The Ocean Gladiator with map-wide ultimate and chain crowd control."},
	{ID: "edith", Name: "Edith", Role: domain.RoleTank, SecondaryRole: domain.RoleMarksman, Tier: domain.TierA, WinRate: 49.8, PickRate: 7.5, BanRate: 4.1, Difficulty: domain.DifficultyMedium, Description: "The Forsaken Guardian who transforms between tank and marksman modes."},
	{ID: "alice", Name: "Alice", Role: domain.RoleMage, Tier: domain.TierA, WinRate: 50.1, PickRate: 6.8, BanRate: 2.3, Difficulty: domain.DifficultyMedium, Description: "The Queen of Blood with sustained damage and life steal."},
	{ID: "ling", Name: "Ling", Role: domain.RoleAssassin, Tier: domain.TierA, WinRate: 49.5, PickRate: 10.2, BanRate: 12.5, Difficulty: domain.DifficultyHard, Description: "The Cyan Finch with wall-running mobility and high burst damage."},
	{ID: "brody", Name: "Brody", Role: domain.RoleMarksman, Tier: domain.TierA, WinRate: 50.6, PickRate: 8.9, BanRate: 4.7, Difficulty: domain.DifficultyMedium, Description: "The Lone Star with high burst damage and mobility."},
	{ID: "beatrix", Name: "Beatrix", Role: domain.RoleMarksman, Tier: domain.TierA, WinRate: 50.2, PickRate: 9.7, BanRate: 5.8, Difficulty: domain.DifficultyHard, Description: "The Dawnbreaker with four unique weapons and high skill ceiling."},
	{ID: "yve", Name: "Yve", Role: domain.RoleMage, Tier: domain.TierA, WinRate: 49.6, PickRate: 7.8, BanRate: 4.2, Difficulty: domain.DifficultyMedium, Description: "The Astrowarden with zone control and global ultimate."},
	{ID: "angela", Name: "Angela", Role: domain.RoleSupport, Tier: domain.TierB, WinRate: 48.9, PickRate: 7.3, BanRate: 6.2, Difficulty: domain.DifficultyEasy, Description: "The Bunnylove with powerful healing and ultimate attachment."},
	{ID: "zilong", Name: "Zilong", Role: domain.RoleFighter, Tier: domain.TierB, WinRate: 48.2, PickRate: 5.8, BanRate: 1.5, Difficulty: domain.DifficultyEasy, Description: "The Dragon Warrior with high split-push pressure and dueling."},
	{ID: "eudora", Name: "Eudora", Role: domain.RoleMage, Tier: domain.TierB, WinRate: 47.8, PickRate: 4.9, BanRate: 1.2, Difficulty: domain.DifficultyEasy, Description: "The Lightning Sorceress with burst damage and stuns."},
	{ID: "rafaela", Name: "Rafaela", Role: domain.RoleSupport, Tier: domain.TierB, WinRate: 48.1, PickRate: 5.2, BanRate: 1.8, Difficulty: domain.DifficultyEasy, Description: "The Wings of Holiness with healing and crowd control."},
	{ID: "alucard", Name: "Alucard", Role: domain.RoleFighter, SecondaryRole: domain.RoleAssassin, Tier: domain.TierC, WinRate: 46.5, PickRate: 4.2, BanRate: 0.8, Difficulty: domain.DifficultyMedium, Description: "The Demon Hunter with high life steal and chase potential."},
	{ID: "miya", Name: "Miya", Role: domain.RoleMarksman, Tier: domain.TierC, WinRate: 45.8, PickRate: 3.5, BanRate: 0.5, Difficulty: domain.DifficultyEasy, Description: "The Moonlight Archer with attack speed and invisibility."},
}

var items = []*domain.EquipmentItem{
	{ID: "berserkers-fury", Name: "Berserker's Fury", Category: domain.ItemAttack},
	{ID: "blade-of-despair", Name: "Blade of Despair", Category: domain.ItemAttack},
	{ID: "blade-of-the-heptaseas", Name: "Blade of the Heptaseas", Category: domain.ItemAttack},
	{ID: "corrosion-scythe", Name: "Corrosion Scythe", Category: domain.ItemAttack},
	{ID: "demon-hunter-sword", Name: "Demon Hunter Sword", Category: domain.ItemAttack},
	{ID: "endless-battle", Name: "Endless Battle", Category: domain.ItemAttack},
	{ID: "fleeting-time", Name: "Fleeting Time", Category: domain.ItemAttack},
	{ID: "golden-staff", Name: "Golden Staff", Category: domain.ItemAttack},
	{ID: "great-dragon-spear", Name: "Great Dragon Spear", Category: domain.ItemAttack},
	{ID: "haas-claws", Name: "Haas' Claws", Category: domain.ItemAttack},
	{ID: "hunter-strike", Name: "Hunter Strike", Category: domain.ItemAttack},
	{ID: "malefic-roar", Name: "Malefic Roar", Category: domain.ItemAttack},
	{ID: "rose-gold-meteor", Name: "Rose Gold Meteor", Category: domain.ItemAttack},
	{ID: "sea-halberd", Name: "Sea Halberd", Category: domain.ItemAttack},
	{ID: "sky-piercer", Name: "Sky Piercer", Category: domain.ItemAttack},
	{ID: "war-axe", Name: "War Axe", Category: domain.ItemAttack},
	{ID: "wind-of-nature", Name: "Wind of Nature", Category: domain.ItemAttack},
	{ID: "windtalker", Name: "Windtalker", Category: domain.ItemAttack},
	{ID: "scarlet-phantom", Name: "Scarlet Phantom", Category: domain.ItemAttack},

	{ID: "blood-wings", Name: "Blood Wings", Category: domain.ItemMagic},
	{ID: "clock-of-destiny", Name: "Clock of Destiny", Category: domain.ItemMagic},
	{ID: "concentrated-energy", Name: "Concentrated Energy", Category: domain.ItemMagic},
	{ID: "divine-glaive", Name: "Divine Glaive", Category: domain.ItemMagic},
	{ID: "enchanted-talisman", Name: "Enchanted Talisman", Category: domain.ItemMagic},
	{ID: "feather-of-heaven", Name: "Feather of Heaven", Category: domain.ItemMagic},
	{ID: "flask-of-the-oasis", Name: "Flask of the Oasis", Category: domain.ItemMagic},
	{ID: "genius-wand", Name: "Genius Wand", Category: domain.ItemMagic},
	{ID: "glowing-wand", Name: "Glowing Wand", Category: domain.ItemMagic},
	{ID: "holy-crystal", Name: "Holy Crystal", Category: domain.ItemMagic},
	{ID: "ice-queen-wand", Name: "Ice Queen Wand", Category: domain.ItemMagic},
	{ID: "lightning-truncheon", Name: "Lightning Truncheon", Category: domain.ItemMagic},
	{ID: "winter-truncheon", Name: "Winter Truncheon", Category: domain.ItemMagic},
	{ID: "calamity-reaper", Name: "Calamity Reaper", Category: domain.ItemMagic},
	{ID: "necklace-of-durance", Name: "Necklace of Durance", Category: domain.ItemMagic},

	{ID: "antique-cuirass", Name: "Antique Cuirass", Category: domain.ItemDefense},
	{ID: "athenas-shield", Name: "Athena's Shield", Category: domain.ItemDefense},
	{ID: "blade-armor", Name: "Blade Armor", Category: domain.ItemDefense},
	{ID: "brute-force-breastplate", Name: "Brute Force Breastplate", Category: domain.ItemDefense},
	{ID: "cursed-helmet", Name: "Cursed Helmet", Category: domain.ItemDefense},
	{ID: "dominance-ice", Name: "Dominance Ice", Category: domain.ItemDefense},
	{ID: "guardian-helmet", Name: "Guardian Helmet", Category: domain.ItemDefense},
	{ID: "immortality", Name: "Immortality", Category: domain.ItemDefense},
	{ID: "oracle", Name: "Oracle", Category: domain.ItemDefense},
	{ID: "queens-wings", Name: "Queen's Wings", Category: domain.ItemDefense},
	{ID: "radiant-armor", Name: "Radiant Armor", Category: domain.ItemDefense},
	{ID: "thunder-belt", Name: "Thunder Belt", Category: domain.ItemDefense},
	{ID: "twilight-armor", Name: "Twilight Armor", Category: domain.ItemDefense},

	{ID: "arcane-boots", Name: "Arcane Boots", Category: domain.ItemMovement},
	{ID: "demon-shoes", Name: "Demon Shoes", Category: domain.ItemMovement},
	{ID: "magic-shoes", Name: "Magic Shoes", Category: domain.ItemMovement},
	{ID: "rapid-boots", Name: "Rapid Boots", Category: domain.ItemMovement},
	{ID: "swift-boots", Name: "Swift Boots", Category: domain.ItemMovement},
	{ID: "tough-boots", Name: "Tough Boots", Category: domain.ItemMovement},
	{ID: "warrior-boots", Name: "Warrior Boots", Category: domain.ItemMovement},
	{ID: "war-boots", Name: "War Boots", Category: domain.ItemMovement},

	{ID: "beast-killer", Name: "Beast Killer", Category: domain.ItemJungle},
	{ID: "bloodlust-axe", Name: "Bloodlust Axe", Category: domain.ItemJungle},
	{ID: "hunter-knife", Name: "Hunter's Knife", Category: domain.ItemJungle},
	{ID: "pillager-axe", Name: "Pillager Axe", Category: domain.ItemJungle},
	{ID: "raptor-machete", Name: "Raptor Machete", Category: domain.ItemJungle},

	{ID: "conceal", Name: "Conceal", Category: domain.ItemRoaming},
	{ID: "dire-hit", Name: "Dire Hit", Category: domain.ItemRoaming},
	{ID: "encourage", Name: "Encourage", Category: domain.ItemRoaming},
	{ID: "favor", Name: "Favor", Category: domain.ItemRoaming},
	{ID: "shadow-mask", Name: "Shadow Mask", Category: domain.ItemRoaming},
}

var spells = []*domain.BattleSpell{
	{Name: "Retribution"},
	{Name: "Inspire"},
	{Name: "Sprint"},
	{Name: "Execute"},
	{Name: "Revitalize"},
	{Name: "Aegis"},
	{Name: "Petrify"},
	{Name: "Purify"},
	{Name: "Flicker"},
	{Name: "Flameshot"},
	{Name: "Arrival"},
	{Name: "Vengeance"},
}

var emblems = []*domain.EmblemSet{
	{Name: "Tank Emblem", Talents: []string{"Tenacity", "Brave Smite", "Concussive Blast", "Focusing Mark", "Life Drain"}},
	{Name: "Fighter Emblem", Talents: []string{"Festival of Blood", "Brave Smite", "Deathly Alliance", "Spell Vamp", "Unbending Will"}},
	{Name: "Assassin Emblem", Talents: []string{"Killing Spree", "Master Assassin", "Impure Rage", "Quantum Charge", "Seasoned Hunter"}},
	{Name: "Mage Emblem", Talents: []string{"Mystery Shop", "Impure Rage", "Magic Worship", "Quantum Charge", "Lethal Ignition"}},
	{Name: "Marksman Emblem", Talents: []string{"Weapon Master", "Weakness Finder", "Thunder Strike", "Quantum Charge", "Tactical Pursuit"}},
	{Name: "Support Emblem", Talents: []string{"Focusing Mark", "Gift", "Pull Yourself Together", "Healing Hand", "Life Drain"}},
}
